// Package rest mounts the activity service on a go-router server. It owns the
// JSON wire contract: success envelopes, the {"detail": ...} error shape, and
// the status mapping for the service error taxonomy.
package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"
	"github.com/mergington/go-activities/command"
	"github.com/mergington/go-activities/pkg/types"
	"github.com/mergington/go-activities/query"
	"github.com/mergington/go-activities/service"
)

// Register mounts the activity endpoints. The root path redirects to the
// static frontend; everything else is JSON.
func Register(srv router.Server[*fiber.App], svc *service.Service, logger types.Logger) {
	if logger == nil {
		logger = types.NopLogger{}
	}
	r := srv.Router()

	r.Get("/", redirectToFrontend())
	r.Get("/activities", listActivities(svc))
	r.Post("/activities/:name/signup", signup(svc))
	r.Post("/activities/:name/unregister", unregister(svc))

	logger.Info("activity routes registered")
}

func redirectToFrontend() router.HandlerFunc {
	return func(c router.Context) error {
		c.SetHeader("Location", "/static/index.html")
		return c.Status(http.StatusFound).Send(nil)
	}
}

func listActivities(svc *service.Service) router.HandlerFunc {
	return func(c router.Context) error {
		snapshot, err := svc.Queries().Activities.Query(c.Context(), query.ActivityListInput{})
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusOK, snapshot)
	}
}

func signup(svc *service.Service) router.HandlerFunc {
	return func(c router.Context) error {
		name := c.Param("name", "")
		addr := c.FormValue("email")

		err := svc.Commands().Enroll.Execute(c.Context(), command.EnrollInput{
			Activity: name,
			Email:    addr,
		})
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusOK, messageBody{
			Message: fmt.Sprintf("Signed up %s for %s", addr, name),
		})
	}
}

func unregister(svc *service.Service) router.HandlerFunc {
	return func(c router.Context) error {
		name := c.Param("name", "")

		var req unregisterRequest
		if err := c.Bind(&req); err != nil {
			return writeJSON(c, http.StatusBadRequest, detailBody{Detail: "Invalid request body"})
		}

		err := svc.Commands().Withdraw.Execute(c.Context(), command.WithdrawInput{
			Activity: name,
			Email:    req.Email,
		})
		if err != nil {
			return writeError(c, err)
		}
		return writeJSON(c, http.StatusOK, messageBody{
			Message: fmt.Sprintf("Unregistered %s from %s", req.Email, name),
		})
	}
}

type unregisterRequest struct {
	Email string `json:"email"`
}

type messageBody struct {
	Message string `json:"message"`
}

type detailBody struct {
	Detail string `json:"detail"`
}

func writeJSON(ctx router.Context, status int, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("failed to marshal JSON")
	}
	ctx.SetHeader("Content-Type", "application/json")
	return ctx.Status(status).Send(data)
}
