package main

import (
	"context"
	"strings"

	"naraigoto-api/internal/handlers"
	"naraigoto-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,OPTIONS",
			map[string]string{"error": "service unavailable"})), nil
	}

	lessonHandler := handlers.NewLessonHandler(container.LessonService)
	reviewHandler := handlers.NewReviewHandler(container.ReviewService)

	var resp *lambda.Response

	switch {
	case req.IsPreflight():
		resp = lambda.NoContent("GET,OPTIONS")
	case req.Method == "GET" && strings.HasSuffix(req.Path, "/reviews"):
		resp, err = reviewHandler.HandleGetByLesson(ctx, req)
	case req.Method == "GET" && hasLessonID(req):
		resp, err = lessonHandler.HandleGet(ctx, req)
	case req.Method == "GET":
		resp, err = lessonHandler.HandleList(ctx, req)
	default:
		resp = lambda.JSON(404, "GET,OPTIONS", map[string]string{"error": "Not found"})
	}

	if err != nil {
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,OPTIONS",
			map[string]string{"error": "Internal server error"})), nil
	}

	return lambda.ToAPIGateway(resp), nil
}

// hasLessonID reports whether the request targets a single lesson rather than
// the whole catalog.
func hasLessonID(req *lambda.Request) bool {
	if req.PathParams["lessonId"] != "" || req.PathParams["lessonsId"] != "" {
		return true
	}
	trimmed := strings.Trim(req.Path, "/")
	return trimmed != "" && trimmed != "lessons"
}

func main() {
	awslambda.Start(handler)
}
