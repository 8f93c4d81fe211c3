package api

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// success writes {"success": true, key: value}.
func success(ctx *fiber.Ctx, key string, value any) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		key:       value,
	})
}

// successRaw is success for an already encoded JSON value.
func successRaw(ctx *fiber.Ctx, key string, raw []byte) error {
	body, err := sjson.SetRawBytes([]byte(`{"success":true}`), key, raw)
	if err != nil {
		return errors.Wrap(err, "wrap response")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(body)
}

func marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal response")
	}
	return b, nil
}
