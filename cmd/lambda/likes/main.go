package main

import (
	"context"

	"naraigoto-api/internal/handlers"
	"naraigoto-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,POST,DELETE,OPTIONS",
			map[string]string{"error": "service unavailable"})), nil
	}

	likeHandler := handlers.NewLikeHandler(container.LikeService)

	var resp *lambda.Response

	switch {
	case req.IsPreflight():
		resp = lambda.NoContent("GET,POST,DELETE,OPTIONS")
	case req.Method == "POST":
		resp, err = likeHandler.HandleLike(ctx, req)
	case req.Method == "DELETE":
		resp, err = likeHandler.HandleUnlike(ctx, req)
	case req.Method == "GET":
		resp, err = likeHandler.HandleList(ctx, req)
	default:
		resp = lambda.JSON(404, "GET,POST,DELETE,OPTIONS", map[string]string{"error": "Not found"})
	}

	if err != nil {
		return lambda.ToAPIGateway(lambda.JSON(500, "GET,POST,DELETE,OPTIONS",
			map[string]string{"error": "Internal server error"})), nil
	}

	return lambda.ToAPIGateway(resp), nil
}

func main() {
	awslambda.Start(handler)
}
