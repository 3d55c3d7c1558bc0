package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"neuma/internal/service"
	"neuma/internal/transport/rest/handler"
	"neuma/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	DirectoryService  *service.DirectoryService
	CatalogService    *service.CatalogService
	AssessmentService *service.AssessmentService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(c.AuthService)
	classroomHandler := handler.NewClassroomHandler(c.DirectoryService)
	activityHandler := handler.NewActivityHandler(c.CatalogService, c.DirectoryService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Teacher routes
	teacherRoutes := v1.NewRoute().Subrouter()
	teacherRoutes.Use(authMW.RequireTeacher)

	teacherRoutes.HandleFunc("/classrooms", classroomHandler.Create).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms", classroomHandler.List).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms/{classroomId}", classroomHandler.Delete).Methods("DELETE", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms/{classroomId}/members", classroomHandler.Members).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms/{classroomId}/styles", classroomHandler.StyleBreakdown).Methods("GET", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms/{classroomId}/activities", activityHandler.Create).Methods("POST", "OPTIONS")
	teacherRoutes.HandleFunc("/classrooms/{classroomId}/activities/{activityId}", activityHandler.Delete).Methods("DELETE", "OPTIONS")

	// Student routes
	studentRoutes := v1.NewRoute().Subrouter()
	studentRoutes.Use(authMW.RequireStudent)

	studentRoutes.HandleFunc("/classrooms/join", classroomHandler.Join).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/me/classrooms", classroomHandler.ListJoined).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/assessment/start", assessmentHandler.Start).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/assessment/current", assessmentHandler.Current).Methods("GET", "OPTIONS")
	studentRoutes.HandleFunc("/assessment/answer", assessmentHandler.Answer).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/assessment/back", assessmentHandler.Back).Methods("POST", "OPTIONS")
	studentRoutes.HandleFunc("/assessment/result", assessmentHandler.Result).Methods("GET", "OPTIONS")

	// Shared routes (owner or joined student, checked in the handler)
	sharedRoutes := v1.NewRoute().Subrouter()
	sharedRoutes.Use(authMW.RequireAuth)

	sharedRoutes.HandleFunc("/classrooms/{classroomId}/activities", activityHandler.List).Methods("GET", "OPTIONS")
	sharedRoutes.HandleFunc("/classrooms/{classroomId}/activities/{activityId}/attachment", activityHandler.DownloadAttachment).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
