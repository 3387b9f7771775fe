package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sortify-ai/backend/intervsrvc"
	"github.com/sortify-ai/backend/proctorsrvc"
	"github.com/sortify-ai/backend/tmplsrvc"
	"github.com/sortify-ai/backend/user"
	userhttp "github.com/sortify-ai/backend/user/http"
)

type HttpServer struct {
	userHandler *userhttp.UserHttpHandler
	tmplSrvc    *tmplsrvc.TemplateSrvc
	intervSrvc  *intervsrvc.IntervSrvc
	proctorSrvc *proctorsrvc.ProctorSrvc
	logger      *slog.Logger
	router      *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	tmplSrvc *tmplsrvc.TemplateSrvc,
	intervSrvc *intervsrvc.IntervSrvc,
	proctorSrvc *proctorsrvc.ProctorSrvc,
	jwtKey []byte,
	corsOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("sortify", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": "dev",
		},
	})

	router.Use(httplog.RequestLogger(logger))
	router.Use(MetricsMiddleware)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(getJwtAuthMiddleware(jwtKey))

	server := &HttpServer{
		userHandler: userhttp.NewUserHttpHandler(userSrvc, jwtKey),
		tmplSrvc:    tmplSrvc,
		intervSrvc:  intervSrvc,
		proctorSrvc: proctorSrvc,
		logger:      logger.Logger,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router

	r.Post("/users", httpserver.userHandler.Register)
	r.Post("/auth/login", httpserver.userHandler.Login)
	r.Get("/auth/whoami", httpserver.userHandler.WhoAmI)

	r.Post("/templates", httpserver.createTemplate)
	r.Get("/templates", httpserver.listTemplates)
	r.Get("/templates/available", httpserver.listAvailableTemplates)
	r.Get("/templates/{templateUuid}", httpserver.getTemplate)
	r.Put("/templates/{templateUuid}", httpserver.updateTemplate)
	r.Delete("/templates/{templateUuid}", httpserver.deleteTemplate)
	r.Get("/templates/{templateUuid}/analytics", httpserver.templateAnalytics)

	r.Post("/interviews", httpserver.startInterview)
	r.Get("/interviews", httpserver.listInterviews)
	r.Get("/interviews/{interviewUuid}", httpserver.getInterview)
	r.Post("/interviews/{interviewUuid}/answers", httpserver.submitAnswer)
	r.Get("/interviews/{interviewUuid}/time", httpserver.interviewTime)
	r.Post("/interviews/{interviewUuid}/end", httpserver.endInterview)

	r.Post("/interviews/{interviewUuid}/violations", httpserver.reportViolation)
	r.Post("/interviews/{interviewUuid}/snapshots", httpserver.uploadSnapshot)
	r.Get("/proctor/stats", httpserver.proctorStats)

	r.Get("/healthz", httpserver.healthz)
	r.Handle("/metrics", promhttp.Handler())
}
