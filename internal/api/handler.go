package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/surhub/startup-weekend/internal/auth"
	"github.com/surhub/startup-weekend/internal/countdown"
	"github.com/surhub/startup-weekend/internal/i18n"
	"github.com/surhub/startup-weekend/internal/registration"
	"github.com/surhub/startup-weekend/internal/service"
	"github.com/surhub/startup-weekend/internal/session"
	"github.com/surhub/startup-weekend/pkg/logger"
)

type Handler struct {
	identity *service.IdentityService
	ideas    *service.IdeaService
	teams    *service.TeamService
	schedule *service.ScheduleService

	holder   *session.Holder
	resolver *i18n.Resolver

	eventStart time.Time
	eventEnd   time.Time

	healthChecker HealthChecker

	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func (h *Handler) WithHealthChecker(c HealthChecker) *Handler {
	h.healthChecker = c
	return h
}

func (h *Handler) WithIdentityService(identity *service.IdentityService) *Handler {
	h.identity = identity
	return h
}

func (h *Handler) WithIdeaService(ideas *service.IdeaService) *Handler {
	h.ideas = ideas
	return h
}

func (h *Handler) WithTeamService(teams *service.TeamService) *Handler {
	h.teams = teams
	return h
}

func (h *Handler) WithScheduleService(schedule *service.ScheduleService) *Handler {
	h.schedule = schedule
	return h
}

func (h *Handler) WithSessionHolder(holder *session.Holder) *Handler {
	h.holder = holder
	return h
}

func (h *Handler) WithResolver(resolver *i18n.Resolver) *Handler {
	h.resolver = resolver
	return h
}

func (h *Handler) WithEventWindow(start, end time.Time) *Handler {
	h.eventStart = start
	h.eventEnd = end
	return h
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewValidator()
	e.Use(middleware.RequestID())
	e.Use(ZapLoggerMiddleware(h.logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.RouteNotFound("/*", h.NotFound)

	e.GET("/health", h.healthChecker.HealthCheck())

	e.GET("/", h.Home)
	e.POST("/login", h.Login)
	e.POST("/register", h.Register)
	e.POST("/logout", h.Logout)

	e.GET("/language", h.GetLanguage)
	e.PUT("/language", h.SetLanguage)

	e.GET("/schedule", h.GetSchedule)
	e.GET("/teams", h.ListTeams)
	e.GET("/teams/categories", h.ListTeamCategories)

	e.GET("/ideas", h.ListIdeas)
	e.GET("/ideas/:id", h.GetIdea)

	userSecurity := e.Group("", AuthMiddleware(auth.TokenTypeUser, auth.TokenTypeAdmin))

	userSecurity.GET("/me", h.Me)
	userSecurity.GET("/dashboard", h.Dashboard)
	userSecurity.GET("/profile", h.Profile)
	userSecurity.POST("/ideas", h.CreateIdea)
	userSecurity.PUT("/ideas/:id", h.UpdateIdea)
	userSecurity.DELETE("/ideas/:id", h.DeleteIdea)

	adminSecurity := e.Group("/admin", AuthMiddleware(auth.TokenTypeAdmin))

	adminSecurity.GET("/users", h.ListUsers)
	adminSecurity.DELETE("/users/:id", h.DeleteUser)
	adminSecurity.GET("/ideas", h.ListIdeas)
}

func (h *Handler) Home(e echo.Context) error {
	lang := h.language(e)
	now := time.Now()

	return e.JSON(http.StatusOK, echo.Map{
		"name":      h.resolver.ResolveIn(lang, "event_name"),
		"tagline":   h.resolver.ResolveIn(lang, "hero_subtitle"),
		"location":  h.resolver.ResolveIn(lang, "event_location"),
		"startDate": h.eventStart,
		"endDate":   h.eventEnd,
		"countdown": countdown.Until(h.eventStart, now),
		"phase":     countdown.PhaseOf(h.eventStart, h.eventEnd, now),
		"language":  lang,
		"dir":       i18n.DirOf(lang),
	})
}

func (h *Handler) Login(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("logging in", zap.String("email", req.Email))

	identity, err := h.holder.Login(e.Request().Context(), req.Email, req.Password)
	if err != nil {
		l.Error("failed to log in", zap.String("email", req.Email), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, echo.Map{
		"token": h.holder.Token(),
		"user":  identity,
	})
}

func (h *Handler) Register(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Name            string   `json:"name" validate:"required"`
		Email           string   `json:"email" validate:"required"`
		Password        string   `json:"password" validate:"required"`
		ConfirmPassword string   `json:"confirmPassword" validate:"required"`
		Role            string   `json:"role" validate:"required"`
		Skills          []string `json:"skills" validate:"required"`
		Bio             string   `json:"bio"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	draft := &registration.Draft{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
		Skills:          req.Skills,
		Bio:             req.Bio,
	}

	fields := registration.ValidateAccount(draft)
	for field, key := range registration.ValidateProfile(draft) {
		fields[field] = key
	}
	if len(fields) > 0 {
		err := service.NewValidationError("registration validation failed", fields)
		l.Error("invalid registration", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("registering", zap.String("email", req.Email))

	identity, err := h.holder.Register(e.Request().Context(), service.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		l.Error("failed to register", zap.String("email", req.Email), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, echo.Map{
		"token": h.holder.Token(),
		"user":  identity,
	})
}

func (h *Handler) Logout(e echo.Context) error {
	h.holder.Logout(e.Request().Context())
	return e.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	claims, ok := ClaimsFromContext(e)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token claims")
	}

	identity, err := h.identity.GetUser(e.Request().Context(), claims.Subject)
	if err != nil {
		l.Error("failed to get current user", zap.String("user_id", claims.Subject), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, identity)
}

func (h *Handler) GetLanguage(e echo.Context) error {
	return e.JSON(http.StatusOK, echo.Map{
		"language": h.resolver.Language(),
		"dir":      h.resolver.Dir(),
	})
}

func (h *Handler) SetLanguage(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	var req struct {
		Language string `json:"language" validate:"required"`
	}

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("switching language", zap.String("language", req.Language))

	if err := h.resolver.SetLanguage(e.Request().Context(), i18n.Language(req.Language)); err != nil {
		l.Error("failed to switch language", zap.String("language", req.Language), zap.Error(err))
		return h.transportError(e, service.NewError(service.ErrorCodeInvalidBody, "unsupported language"))
	}

	return e.JSON(http.StatusOK, echo.Map{
		"language": h.resolver.Language(),
		"dir":      h.resolver.Dir(),
	})
}

func (h *Handler) GetSchedule(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	lang := h.language(e)

	days, err := h.schedule.Days(e.Request().Context(), lang)
	if err != nil {
		l.Error("failed to get schedule", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, echo.Map{
		"days":      days,
		"countdown": countdown.Until(h.eventStart, time.Now()),
	})
}

func (h *Handler) ListTeams(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())
	lang := h.language(e)

	query := service.TeamQuery{
		Search:   e.QueryParam("search"),
		Category: e.QueryParam("category"),
	}

	l.Info("listing teams", zap.String("search", query.Search), zap.String("category", query.Category))

	teams, err := h.teams.List(e.Request().Context(), lang, query)
	if err != nil {
		l.Error("failed to list teams", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, teams)
}

func (h *Handler) ListTeamCategories(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	categories, err := h.teams.Categories(e.Request().Context(), h.language(e))
	if err != nil {
		l.Error("failed to list team categories", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, categories)
}

func (h *Handler) ListIdeas(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	ideas, err := h.ideas.List(e.Request().Context())
	if err != nil {
		l.Error("failed to list ideas", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, ideas)
}

func (h *Handler) GetIdea(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	ideaID := e.Param("id")

	idea, err := h.ideas.GetByID(e.Request().Context(), ideaID)
	if err != nil {
		l.Error("failed to get idea", zap.String("idea_id", ideaID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, idea)
}

func (h *Handler) CreateIdea(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	claims, ok := ClaimsFromContext(e)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token claims")
	}

	var req service.IdeaInput

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("submitting idea", zap.String("title", req.Title), zap.String("created_by", claims.Subject))

	idea, err := h.ideas.Create(e.Request().Context(), claims.Subject, req)
	if err != nil {
		l.Error("failed to submit idea", zap.String("title", req.Title), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusCreated, idea)
}

func (h *Handler) UpdateIdea(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	ideaID := e.Param("id")

	var req service.IdeaInput

	if err := h.decodeRequest(e, &req); err != nil {
		l.Error("invalid request", zap.Any("error", err))
		return h.transportError(e, err)
	}

	l.Info("updating idea", zap.String("idea_id", ideaID))

	idea, err := h.ideas.Update(e.Request().Context(), ideaID, req)
	if err != nil {
		l.Error("failed to update idea", zap.String("idea_id", ideaID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, idea)
}

func (h *Handler) DeleteIdea(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	ideaID := e.Param("id")

	l.Info("deleting idea", zap.String("idea_id", ideaID))

	if err := h.ideas.Delete(e.Request().Context(), ideaID); err != nil {
		l.Error("failed to delete idea", zap.String("idea_id", ideaID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}

func (h *Handler) Dashboard(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	claims, ok := ClaimsFromContext(e)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token claims")
	}

	identity, err := h.identity.GetUser(e.Request().Context(), claims.Subject)
	if err != nil {
		l.Error("failed to get current user", zap.String("user_id", claims.Subject), zap.Any("error", err))
		return h.transportError(e, err)
	}

	ideas, err := h.ideas.List(e.Request().Context())
	if err != nil {
		l.Error("failed to list ideas", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, echo.Map{
		"user":  identity,
		"ideas": ideas,
	})
}

func (h *Handler) Profile(e echo.Context) error {
	return h.Me(e)
}

func (h *Handler) ListUsers(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	users, err := h.identity.ListUsers(e.Request().Context())
	if err != nil {
		l.Error("failed to list users", zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUser(e echo.Context) error {
	l := logger.FromContext(e.Request().Context())

	userID := e.Param("id")

	l.Info("deleting user", zap.String("user_id", userID))

	if err := h.identity.DeleteUser(e.Request().Context(), userID); err != nil {
		l.Error("failed to delete user", zap.String("user_id", userID), zap.Any("error", err))
		return h.transportError(e, err)
	}

	return e.NoContent(http.StatusNoContent)
}

func (h *Handler) NotFound(e echo.Context) error {
	return h.transportError(e, service.NewError(service.ErrorCodeNotFound, "not_found"))
}

// language picks the response language: an explicit ?lang= override when it
// names a supported language, otherwise the persisted preference.
func (h *Handler) language(e echo.Context) i18n.Language {
	if lang := i18n.Language(e.QueryParam("lang")); i18n.Supported(lang) {
		return lang
	}
	return h.resolver.Language()
}

func (h *Handler) decodeRequest(e echo.Context, req any) *service.Error {
	if err := e.Bind(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "invalid request body")
	}

	if err := e.Validate(req); err != nil {
		return service.NewError(service.ErrorCodeInvalidBody, "request validation failed")
	}
	return nil
}

func (h *Handler) transportError(e echo.Context, err *service.Error) error {
	localized := &service.Error{
		Code:    err.Code,
		Message: h.resolver.Resolve(err.Message),
	}
	if len(err.Fields) > 0 {
		localized.Fields = make(map[string]string, len(err.Fields))
		for field, key := range err.Fields {
			localized.Fields[field] = h.resolver.Resolve(key)
		}
	}

	response := struct {
		Error *service.Error `json:"error"`
	}{Error: localized}

	switch err.Code {
	case service.ErrorCodeNotFound:
		return e.JSON(http.StatusNotFound, response)
	case service.ErrorCodeInvalidCredentials:
		return e.JSON(http.StatusUnauthorized, response)
	case service.ErrorCodeValidation, service.ErrorCodeInvalidBody:
		return e.JSON(http.StatusBadRequest, response)
	default:
		return e.JSON(http.StatusInternalServerError, response)
	}
}
