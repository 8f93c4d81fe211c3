package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// OptIn marks the response cacheable for maxAge, as last modified at t.
func OptIn(ctx *fiber.Ctx, t time.Time, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(maxAge).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

// ETag sets a strong entity tag and reports whether the request already
// holds it, in which case the caller should answer 304.
func ETag(ctx *fiber.Ctx, tag string) bool {
	quoted := strconv.Quote(tag)
	ctx.Set(fiber.HeaderETag, quoted)
	return ctx.Get(fiber.HeaderIfNoneMatch) == quoted
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
