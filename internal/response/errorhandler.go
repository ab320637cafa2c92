package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler replaces Echo's default handler so that framework errors
// (unknown routes, bad bodies, recovered panics) are rendered as envelopes
// too.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var o Outcome
		var he *echo.HTTPError
		if errors.As(err, &he) {
			o = Outcome{Kind: KindUnexpected, Status: he.Code, Message: httpMessage(he)}
			switch he.Code {
			case http.StatusNotFound:
				o.Kind = KindNotFound
			case http.StatusForbidden, http.StatusUnauthorized:
				o.Kind = KindUnauthorized
			}
		} else {
			o = Classify(err, "internal server error")
		}

		if o.Status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"err", err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(o.Status)
		} else {
			werr = Write(c, o)
		}
		if werr != nil {
			log.Error("write error response", "err", werr)
		}
	}
}

func httpMessage(he *echo.HTTPError) string {
	switch m := he.Message.(type) {
	case string:
		return m
	case error:
		return m.Error()
	case nil:
		return http.StatusText(he.Code)
	default:
		return fmt.Sprint(m)
	}
}
