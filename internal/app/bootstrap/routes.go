// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	adminfeature "github.com/roboticsclub/robohub/internal/app/features/admin"
	authapifeature "github.com/roboticsclub/robohub/internal/app/features/authapi"
	authgooglefeature "github.com/roboticsclub/robohub/internal/app/features/authgoogle"
	errorsfeature "github.com/roboticsclub/robohub/internal/app/features/errors"
	eventsfeature "github.com/roboticsclub/robohub/internal/app/features/events"
	facultyfeature "github.com/roboticsclub/robohub/internal/app/features/faculty"
	festfeature "github.com/roboticsclub/robohub/internal/app/features/fest"
	galleryfeature "github.com/roboticsclub/robohub/internal/app/features/gallery"
	healthfeature "github.com/roboticsclub/robohub/internal/app/features/health"
	homefeature "github.com/roboticsclub/robohub/internal/app/features/home"
	joinfeature "github.com/roboticsclub/robohub/internal/app/features/join"
	landingfeature "github.com/roboticsclub/robohub/internal/app/features/landing"
	loginfeature "github.com/roboticsclub/robohub/internal/app/features/login"
	logoutfeature "github.com/roboticsclub/robohub/internal/app/features/logout"
	projectsfeature "github.com/roboticsclub/robohub/internal/app/features/projects"
	teamfeature "github.com/roboticsclub/robohub/internal/app/features/team"
	"github.com/roboticsclub/robohub/internal/app/store/oauthstate"
	"github.com/roboticsclub/robohub/internal/app/system/auth"
	"github.com/roboticsclub/robohub/internal/app/system/authutil"
	"github.com/roboticsclub/robohub/internal/app/system/captcha"

	// Each views package registers its template set at init time; the
	// engine boot below compiles everything that has been registered.
	_ "github.com/roboticsclub/robohub/internal/app/features/admin/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/events/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/faculty/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/fest/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/gallery/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/home/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/join/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/landing/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/login/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/projects/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/shared/views"
	_ "github.com/roboticsclub/robohub/internal/app/features/team/views"
)

// sessionMaxAge is how long an admin session stays valid.
const sessionMaxAge = 24 * time.Hour

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager and
// template engine, builds the file-storage backend, then mounts the public
// site, the admin back office, and the auth surfaces.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, sessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// File storage backend for posters, photos, and proof uploads.
	store, err := buildStorage(context.Background(), appCfg)
	if err != nil {
		logger.Error("storage init failed", zap.Error(err))
		return nil, err
	}

	// Human verification for the public join and fest forms.
	// A blank secret disables it (local development).
	verifier := captcha.New(appCfg.CaptchaSecret, logger)

	// Static fallback admin credentials; blank username disables them.
	fallback := authutil.FallbackCredentials{
		Username:     appCfg.AdminUsername,
		PasswordHash: appCfg.AdminPasswordHash,
	}
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Locally stored uploads are served straight from disk. S3 objects
	// carry their own public URLs, so nothing to mount.
	if appCfg.StorageType == "local" {
		r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))
	}

	// JSON auth endpoints sit outside the CSRF fence: their clients are
	// scripts and the mobile app, not browser forms.
	authAPIHandler := authapifeature.NewHandler(db, sessionMgr, fallback, logger)
	r.Mount("/api", authapifeature.Routes(authAPIHandler))

	// Everything HTML goes through CSRF protection. Templates embed the
	// token via viewdata.BaseVM.
	csrfProtect := csrf.Protect(
		[]byte(appCfg.SessionKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	)

	r.Group(func(r chi.Router) {
		r.Use(csrfProtect)

		// Public pages
		homeHandler := homefeature.NewHandler(db, errLog, logger)
		r.Get("/", homeHandler.ServeRoot)

		eventsHandler := eventsfeature.NewHandler(db, errLog, logger)
		r.Mount("/events", eventsfeature.Routes(eventsHandler))

		projectsHandler := projectsfeature.NewHandler(db, errLog, logger)
		r.Mount("/projects", projectsfeature.Routes(projectsHandler))

		teamHandler := teamfeature.NewHandler(db, errLog, logger)
		r.Mount("/team", teamfeature.Routes(teamHandler))

		facultyHandler := facultyfeature.NewHandler(db, errLog, logger)
		r.Mount("/faculty", facultyfeature.Routes(facultyHandler))

		galleryHandler := galleryfeature.NewHandler(db, errLog, logger)
		r.Mount("/gallery", galleryfeature.Routes(galleryHandler))

		joinHandler := joinfeature.NewHandler(db, store, verifier, errLog, logger)
		r.Mount("/join", joinfeature.Routes(joinHandler))

		festHandler := festfeature.NewHandler(db, verifier, errLog, logger)
		r.Mount("/fest", festfeature.Routes(festHandler))

		// Authentication
		loginHandler := loginfeature.NewHandler(sessionMgr, errLog, fallback, googleEnabled, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler, sessionMgr))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

		stateStore := oauthstate.New(db)
		googleHandler := authgooglefeature.NewHandler(db, sessionMgr, stateStore,
			appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
		r.Mount("/auth/google", authgooglefeature.Routes(googleHandler))

		// Admin back office, all behind the session gate.
		r.Route("/admin", func(ar chi.Router) {
			ar.Mount("/events", eventsfeature.AdminRoutes(
				eventsfeature.NewAdminHandler(db, store, errLog, logger), sessionMgr))
			ar.Mount("/projects", projectsfeature.AdminRoutes(
				projectsfeature.NewAdminHandler(db, store, errLog, logger), sessionMgr))
			ar.Mount("/landing", landingfeature.AdminRoutes(
				landingfeature.NewAdminHandler(db, store, errLog, logger), sessionMgr))
			ar.Mount("/team", teamfeature.AdminRoutes(
				teamfeature.NewAdminHandler(db, errLog, logger), sessionMgr))
			ar.Mount("/faculty", facultyfeature.AdminRoutes(
				facultyfeature.NewAdminHandler(db, store, errLog, logger), sessionMgr))
			ar.Mount("/gallery", galleryfeature.AdminRoutes(
				galleryfeature.NewAdminHandler(db, store, errLog, logger), sessionMgr))
			ar.Mount("/members", joinfeature.AdminRoutes(
				joinfeature.NewAdminHandler(db, errLog, logger), sessionMgr))
			ar.Mount("/fest", festfeature.AdminRoutes(
				festfeature.NewAdminHandler(db, errLog, logger), sessionMgr))

			// Admin home and the generic collection editor.
			ar.Mount("/", adminfeature.Routes(
				adminfeature.NewHandler(db, errLog, logger), sessionMgr))
		})

		// Error pages
		errorsHandler := errorsfeature.NewHandler()
		r.Get("/forbidden", errorsHandler.Forbidden)
		r.Get("/unauthorized", errorsHandler.Unauthorized)
		r.NotFound(errorsHandler.NotFound)
	})

	return r, nil
}

// buildStorage creates the configured blob storage backend.
func buildStorage(ctx context.Context, appCfg AppConfig) (storage.Store, error) {
	if appCfg.StorageType == "s3" {
		return storage.NewS3(ctx, storage.S3Config{
			Region: appCfg.StorageS3Region,
			Bucket: appCfg.StorageS3Bucket,
			Prefix: appCfg.StorageS3Prefix,
		})
	}
	return storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
}
