package middleware

import (
	"github.com/valyala/fasthttp"

	"github.com/fastygo/todo/api/transport"
)

func reject(ctx *fasthttp.RequestCtx, status int, code, message string) {
	body, err := transport.NewError(code, message, nil).Marshal()
	if err != nil {
		body = []byte(`{"status":"error"}`)
	}
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
