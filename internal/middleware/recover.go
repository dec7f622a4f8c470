package middleware

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover turns a panic in a handler into an error so the poller keeps running
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						zap.Any("panic", r),
						zap.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("panic in handler: %v", r)
				}
			}()
			return next(c)
		}
	}
}
