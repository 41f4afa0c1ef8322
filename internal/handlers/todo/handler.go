package todo

import (
	"net/http"

	"tick/infras/otel"
	"tick/internal/domains/todo/model"
	"tick/internal/domains/todo/model/dto"
	"tick/internal/domains/todo/service"
	"tick/shared"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	"tick/shared/validator"
	"tick/transport/http/middleware"
	"tick/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Todo
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Todo, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Get("/{id}", handler.GetTodoByID)
		routerGroup.Patch("/{id}", handler.UpdateTodo)
		routerGroup.Delete("/{id}", handler.DeleteTodo)
	})
}

// CreateTodo creates a todo owned by the session user. The created todo is
// returned bare, without an envelope.
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	req := dto.CreateTodoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, sess, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTodos lists the session user's todos, optionally filtered by
// completion state.
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.SortableColumns...)

	completed := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldCompleted))

	res, err := handler.service.GetAll(ctx, sess, queryParams, completed)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get todos")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodoByID")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	res, err := handler.service.Get(ctx, sess, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.TodoEnvelope{Todo: res})
}

// UpdateTodo applies a partial update. Only text and completed are
// updatable; unknown body fields are dropped.
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	req := dto.UpdateTodoRequest{}

	if err := req.Decode(r.Body); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, sess, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.TodoEnvelope{Todo: res})
}

// DeleteTodo removes a todo and echoes the deleted document back.
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	sess, ok := gDto.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.Unauthenticated())

		return
	}

	res, err := handler.service.Delete(ctx, sess, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.TodoEnvelope{Todo: res})
}
