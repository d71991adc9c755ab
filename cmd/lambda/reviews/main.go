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
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,POST,OPTIONS",
			map[string]string{"error": "service unavailable"})), nil
	}

	reviewHandler := handlers.NewReviewHandler(container.ReviewService)

	var resp *lambda.Response

	switch {
	case req.IsPreflight():
		resp = lambda.NoContent("GET,POST,OPTIONS")
	case req.Method == "POST":
		resp, err = reviewHandler.HandlePost(ctx, req)
	case req.Method == "GET" && strings.Contains(req.Path, "by-target"):
		resp, err = reviewHandler.HandleGetByTarget(ctx, req)
	case req.Method == "GET":
		resp, err = reviewHandler.HandleGetByLesson(ctx, req)
	default:
		resp = lambda.JSON(404, "GET,POST,OPTIONS", map[string]string{"error": "Not found"})
	}

	if err != nil {
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,POST,OPTIONS",
			map[string]string{"error": "Internal server error"})), nil
	}

	return lambda.ToAPIGateway(resp), nil
}

func main() {
	awslambda.Start(handler)
}
