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

	bookingHandler := handlers.NewBookingHandler(container.BookingService)

	var resp *lambda.Response

	switch {
	case req.IsPreflight():
		resp = lambda.NoContent("GET,POST,OPTIONS")
	case req.Method == "POST" && strings.HasSuffix(req.Path, "/cancel"):
		resp, err = bookingHandler.HandleCancel(ctx, req)
	case req.Method == "POST":
		resp, err = bookingHandler.HandleCreate(ctx, req)
	case req.Method == "GET":
		resp, err = bookingHandler.HandleMyBookings(ctx, req)
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
