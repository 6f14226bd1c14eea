package service

import (
	"context"
	"fmt"
	"tick/config"
	"tick/infras/otel"
	"tick/internal/domains/todo/event"
	"tick/internal/domains/todo/model"
	"tick/internal/domains/todo/model/dto"
	"tick/internal/domains/todo/repository"
	"tick/shared"
	"tick/shared/cache"
	"tick/shared/constant"
	gDto "tick/shared/dto"
	"tick/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyTodo = "todo"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Todo
	cfg       *config.Config
	cache     cache.RedisCache
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, cache cache.RedisCache, publisher event.Publisher, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	todo := req.ToModel(user)

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.publisher.TodoChanged(ctx, event.ActionCreated, todo.ID, user)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Newest first unless the caller asked for a different order.
	if req.SortBy == "" {
		req.SortBy = constant.DefaultValueSortBy
		req.SortDir = constant.DefaultValueSortDir
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	// A malformed id can never match a row, and the uuid column would
	// reject it before the query runs.
	if uuid.Validate(id) != nil {
		return res, failure.NotFound("Todo not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheKeyTodo, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		if res.UserID != user {
			return dto.TodoResponse{}, failure.NotAuthorized("Not authorized to view this todo")
		}

		return res, nil
	}

	todo, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("Todo not found")
	}

	if todo.UserID != user {
		return res, failure.NotAuthorized("Not authorized to view this todo")
	}

	res.FromModel(todo)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("failed to cache todo")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return res, failure.NotFound("Todo not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("Todo not found")
	}

	if todo.UserID != user {
		return res, failure.NotAuthorized("Not authorized to update this todo")
	}

	updatedFields := req.Apply(&todo, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheKeyTodo, id)); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("failed to invalidate todo cache")
	}

	s.publisher.TodoChanged(ctx, event.ActionUpdated, id, user)

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if uuid.Validate(id) != nil {
		return failure.NotFound("Todo not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	todo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return failure.NotFound("Todo not found")
	}

	if todo.UserID != user {
		return failure.NotAuthorized("Not authorized to delete this todo")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheKeyTodo, id)); err != nil {
		log.Warn().Err(err).Str("id", id).Msg("failed to invalidate todo cache")
	}

	s.publisher.TodoChanged(ctx, event.ActionDeleted, id, user)

	return nil
}
