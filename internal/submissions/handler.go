package submissions

import (
	"errors"
	"mime/multipart"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"profile-forge-backend/internal/shared/server/middleware"
	"profile-forge-backend/internal/shared/server/respond"
	"profile-forge-backend/internal/shared/telemetry"
)

const processingErrorPrefix = "An error occurred while processing the file: "

type submitForm struct {
	File     *multipart.FileHeader `form:"file" binding:"required"`
	UserID   string                `form:"userId" binding:"required"`
	UserName string                `form:"userName" binding:"required"`
}

type listQuery struct {
	UserID string `form:"userId" binding:"required"`
	Limit  int    `form:"limit" binding:"omitempty,min=0"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/submit", h.submit)
	r.GET("/submissions", h.list)
	r.GET("/submissions/:id", h.get)
}

func (h *Handler) submit(c *gin.Context) {
	var form submitForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		respond.Detail(c, http.StatusUnprocessableEntity, validationDetails(form, err))
		return
	}

	f, err := form.File.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	sub, err := h.Svc.Submit(c.Request.Context(), SubmitInput{
		UserID:   form.UserID,
		UserName: form.UserName,
		FileName: form.File.Filename,
		Body:     f,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Set(middleware.SubmissionIDKey, sub.ID)
	respond.OK(c, newSubmitResponse(sub))
}

func (h *Handler) fail(c *gin.Context, err error) {
	telemetry.Error("submission.failed", map[string]any{
		"err":        err.Error(),
		"request_id": middleware.RequestIDFromContext(c),
	})
	respond.Detail(c, http.StatusInternalServerError, processingErrorPrefix+err.Error())
}

func (h *Handler) get(c *gin.Context) {
	sub, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.readError(c, err)
		return
	}
	c.Set(middleware.SubmissionIDKey, sub.ID)
	respond.OK(c, sub)
}

func (h *Handler) list(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respond.Detail(c, http.StatusUnprocessableEntity, queryDetails(q, err))
		return
	}
	subs, err := h.Svc.List(c.Request.Context(), q.UserID, q.Limit, q.Offset)
	if err != nil {
		h.readError(c, err)
		return
	}
	respond.OK(c, listResponse{Submissions: subs})
}

func (h *Handler) readError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Detail(c, http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrStoreUnavailable):
		respond.Detail(c, http.StatusServiceUnavailable, "Submission store unavailable")
	case errors.Is(err, ErrInvalidInput):
		respond.Detail(c, http.StatusUnprocessableEntity, err.Error())
	default:
		telemetry.Error("submission.read.failed", map[string]any{
			"err":        err.Error(),
			"request_id": middleware.RequestIDFromContext(c),
		})
		respond.Detail(c, http.StatusInternalServerError, "Failed to load submissions")
	}
}

func validationDetails(form any, err error) []respond.FieldError {
	return fieldErrors(form, "body", "form", err)
}

func queryDetails(q any, err error) []respond.FieldError {
	return fieldErrors(q, "query", "form", err)
}

// fieldErrors maps binding failures onto per-field entries named by their form tag.
func fieldErrors(obj any, location, tag string, err error) []respond.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []respond.FieldError{{Loc: []string{location}, Msg: err.Error(), Type: "value_error"}}
	}

	t := reflect.TypeOf(obj)
	out := make([]respond.FieldError, 0, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if v := sf.Tag.Get(tag); v != "" {
				name = v
			}
		}
		entry := respond.FieldError{Loc: []string{location, name}}
		switch fe.Tag() {
		case "required":
			entry.Msg = "field required"
			entry.Type = "value_error.missing"
		default:
			entry.Msg = "invalid value: failed " + fe.Tag() + " " + fe.Param()
			entry.Type = "value_error"
		}
		out = append(out, entry)
	}
	return out
}
