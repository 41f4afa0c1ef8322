package service

import (
	"context"
	"fmt"
	"strings"

	"tick/config"
	"tick/infras/otel"
	"tick/internal/domains/todo/model"
	"tick/internal/domains/todo/model/dto"
	"tick/internal/domains/todo/repository"
	"tick/shared"
	"tick/shared/cache"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"
	"tick/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyTodo = "todo"
)

// Todo guards every operation with the caller's identity: reads and writes
// are filtered by (id AND creator), so a foreign or absent todo always
// surfaces as NotFound.
type Todo interface {
	Create(ctx context.Context, sess gDto.Session, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, sess gDto.Session, params gDto.QueryParams, completed *bool) (dto.GetTodosResponse, error)
	Get(ctx context.Context, sess gDto.Session, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, sess gDto.Session, id string, req dto.UpdateTodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, sess gDto.Session, id string) (dto.TodoResponse, error)
}

type serviceImpl struct {
	repo  repository.Todo
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// updatePatch is the whitelisted set of updatable columns.
type updatePatch struct {
	Text      *string `db:"text"`
	Completed *bool   `db:"completed"`
}

func (s *serviceImpl) Create(ctx context.Context, sess gDto.Session, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(req.Text) == "" {
		return res, failure.Validation(map[string]string{"text": "text is required"}) // nolint:wrapcheck
	}

	todo := req.ToModel(sess.UserID)

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, failure.BadRequest(fmt.Errorf("failed to create todo: %w", err)) // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, sess gDto.Session, params gDto.QueryParams, completed *bool) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCreator,
				Operator: gDto.FilterOperatorEq,
				Value:    sess.UserID,
				Table:    model.TableName,
			},
		},
	}

	if completed != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCompleted,
			Operator: gDto.FilterOperatorEq,
			Value:    *completed,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, failure.BadRequest(fmt.Errorf("failed to get todos: %w", err)) // nolint:wrapcheck
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, sess gDto.Session, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheKeyTodo, sess.UserID, id)
	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	todo, err := s.repo.Get(ctx, s.ownedFilter(id, sess))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, failure.BadRequest(fmt.Errorf("failed to get todo: %w", err)) // nolint:wrapcheck
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache todo")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, sess gDto.Session, id string, req dto.UpdateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	filter := s.ownedFilter(id, sess)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, failure.BadRequest(fmt.Errorf("failed to get todo: %w", err)) // nolint:wrapcheck
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(updatePatch{Text: req.Text, Completed: req.Completed}, sess.UserID)

	// completedAt is derived, never caller-supplied: forced to now on an
	// explicit completed=true, cleared on an explicit completed=false.
	if req.Completed != nil {
		if *req.Completed {
			updatedFields[model.FieldCompletedAt] = timezone.Now().Unix()
		} else {
			updatedFields[model.FieldCompletedAt] = nil
		}
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, failure.BadRequest(fmt.Errorf("failed to update todo: %w", err)) // nolint:wrapcheck
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to reload todo")

		return res, failure.BadRequest(fmt.Errorf("failed to reload todo: %w", err)) // nolint:wrapcheck
	}

	res.FromModel(updated)

	s.invalidate(ctx, sess, id)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, sess gDto.Session, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	filter := s.ownedFilter(id, sess)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, failure.BadRequest(fmt.Errorf("failed to get todo: %w", err)) // nolint:wrapcheck
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return res, failure.BadRequest(fmt.Errorf("failed to delete todo: %w", err)) // nolint:wrapcheck
	}

	res.FromModel(todo)

	s.invalidate(ctx, sess, id)

	return res, nil
}

func (s *serviceImpl) ownedFilter(id string, sess gDto.Session) gDto.FilterGroup {
	return shared.FilterOwnedByID(id, model.FieldID, sess.UserID, model.FieldCreator, model.TableName)
}

func (s *serviceImpl) invalidate(ctx context.Context, sess gDto.Session, id string) {
	cacheKey := shared.BuildCacheKey(cacheKeyTodo, sess.UserID, id)
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to invalidate todo cache")
	}
}
