package errors

import (
	"net/http"

	"go.uber.org/zap"

	"pupper-backend/pkg/common"
)

// Handler maps application errors onto the shared response envelope
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates an error handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle writes the HTTP response for err
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	appErr := GetAppError(err)
	if appErr == nil {
		h.logger.Error("unhandled error",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
		)
		common.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.Error(err),
			zap.String("type", string(appErr.Type)),
			zap.String("path", r.URL.Path),
		)
	} else {
		h.logger.Info("request rejected",
			zap.String("type", string(appErr.Type)),
			zap.String("message", appErr.Message),
			zap.String("path", r.URL.Path),
		)
	}

	if len(appErr.Details) > 0 {
		common.RespondErrorWithDetails(w, status, appErr.Message, appErr.Details)
		return
	}
	common.RespondError(w, status, appErr.Message)
}
