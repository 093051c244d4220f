package api

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/microcosm-cc/bluemonday"

	"github.com/mbeaulieu/ao-analyzer/internal/analysis"
	"github.com/mbeaulieu/ao-analyzer/internal/auth"
	"github.com/mbeaulieu/ao-analyzer/internal/convert"
	"github.com/mbeaulieu/ao-analyzer/internal/extract"
	"github.com/mbeaulieu/ao-analyzer/internal/models"
	"github.com/mbeaulieu/ao-analyzer/internal/registry"
)

const maxUploadFiles = 10

type Server struct {
	Echo        *echo.Echo
	DB          *pgxpool.Pool
	AuthService *auth.Service
	Registry    *registry.Store
	Analyses    *analysis.Store

	notesPolicy *bluemonday.Policy
}

func NewServer(pool *pgxpool.Pool) *Server {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:4200"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s := &Server{
		Echo:        e,
		DB:          pool,
		AuthService: auth.NewService(pool),
		Registry:    registry.NewStore(pool),
		Analyses:    analysis.NewStore(),
		notesPolicy: bluemonday.StrictPolicy(),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")

	// Auth Routes
	api.POST("/auth/signup", s.handleSignup)
	api.POST("/auth/login", s.handleLogin)

	// Protected Routes
	protected := api.Group("")
	protected.Use(auth.Middleware)
	protected.POST("/analyses", s.handleCreateAnalysis)
	protected.GET("/analyses/:id", s.handleGetAnalysis)
	protected.GET("/tenders/:id", s.handleGetTender)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleSignup(c echo.Context) error {
	var req auth.SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email and password are required"})
	}

	resp, err := s.AuthService.Signup(c.Request().Context(), req)
	if err != nil {
		if err == auth.ErrUserExists {
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) handleLogin(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	resp, err := s.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if err == auth.ErrInvalidCreds {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, resp)
}

// handleCreateAnalysis accepts a multipart form with one or more documents,
// an optional tender_id and optional notes, runs the extraction pipeline on
// the combined text and stores the immutable result.
func (s *Server) handleCreateAnalysis(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := auth.GetUserIDFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentification requise")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Formulaire multipart invalide"})
	}
	files := form.File["files"]
	if len(files) == 0 {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Aucun fichier reçu."})
	}
	if len(files) > maxUploadFiles {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": fmt.Sprintf("Trop de fichiers (max %d).", maxUploadFiles)})
	}

	var tenderID *int64
	if raw := c.FormValue("tender_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "tender_id invalide"})
		}
		tenderID = &id
	}
	notes := s.notesPolicy.Sanitize(c.FormValue("notes"))

	combined, fileMeta, err := s.combineDocuments(files)
	if err != nil {
		if errors.Is(err, convert.ErrUnreadable) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	opts := extract.Options{Now: time.Now().UTC()}

	if user, err := s.AuthService.GetProfile(ctx, userID); err == nil {
		opts.Profile = &extract.Profile{
			ActivityType:  user.ActivityType,
			MainSpecialty: user.MainSpecialty,
		}
	}

	if tenderID != nil {
		rec, err := s.Registry.GetTender(ctx, *tenderID)
		if err != nil {
			c.Logger().Errorf("registry lookup failed for tender %d: %v", *tenderID, err)
		} else if rec != nil {
			opts.Registry = registryRecord(rec)
		}
	}

	result := extract.Analyze(combined, opts)

	a := &models.TenderAnalysis{
		ID:        analysis.NewID(),
		Status:    "ok",
		CreatedAt: time.Now().UTC(),
		Inputs: models.AnalysisInputs{
			TenderID:  tenderID,
			Notes:     notes,
			FileCount: len(files),
			Files:     fileMeta,
		},
		Result: result,
	}
	s.Analyses.Put(a)

	return c.JSON(http.StatusOK, a)
}

// combineDocuments decodes every upload and concatenates the texts with
// explicit file boundary markers, preserving upload order.
func (s *Server) combineDocuments(files []*multipart.FileHeader) (string, []models.FileMeta, error) {
	var parts []string
	var meta []models.FileMeta

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return "", nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return "", nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
		}

		meta = append(meta, models.FileMeta{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			SizeBytes:   len(data),
		})

		text, err := convert.Decode(fh.Filename, fh.Header.Get("Content-Type"), data)
		if err != nil {
			return "", nil, err
		}
		parts = append(parts, fmt.Sprintf("\n\n===== FILE: %s =====\n\n%s", fh.Filename, text))
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), meta, nil
}

func (s *Server) handleGetAnalysis(c echo.Context) error {
	a, ok := s.Analyses.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Analyse introuvable (serveur redémarré ?). Relance l'analyse.",
		})
	}
	return c.JSON(http.StatusOK, a)
}

func (s *Server) handleGetTender(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id invalide"})
	}
	rec, err := s.Registry.GetTender(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Appel d'offres inconnu"})
	}
	return c.JSON(http.StatusOK, rec)
}

// registryRecord flattens a tenders row into the sparse record the
// extraction engine consumes.
func registryRecord(rec *registry.Record) *extract.RegistryRecord {
	out := &extract.RegistryRecord{}
	if rec.Title != nil {
		out.Title = *rec.Title
	}
	if rec.URL != nil {
		out.URL = *rec.URL
	}
	if rec.PortalName != nil {
		out.PortalName = *rec.PortalName
	}
	if rec.PublishedAt != nil {
		out.PublishedAt = rec.PublishedAt.UTC().Format("2006-01-02")
	}
	if rec.Buyer != nil {
		out.Buyer = *rec.Buyer
	}
	if rec.Country != nil {
		out.Country = *rec.Country
	}
	if rec.Region != nil {
		out.Region = *rec.Region
	}
	return out
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}
