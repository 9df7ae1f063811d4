package controller

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"edu-manage/store"
)

// NewRouter wires every controller onto the route table.
func NewRouter(s store.Store) *chi.Mux {
	uc := NewUserController(s)
	tc := NewTeacherRequestController(s)
	cc := NewClassController(s)
	ec := NewEnrollmentController(s)
	ac := NewAssignmentController(s)
	sc := NewSubmissionController(s)
	fc := NewFeedbackController(s)
	pc := NewPartnerController(s)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/users", uc.HandleCreateUser)
	r.Get("/users", uc.HandleSearchUsers)
	r.Get("/users/{email}", uc.HandleGetUserByEmail)
	r.Patch("/users/{id}", uc.HandleUpdateUser)
	r.Patch("/users/role/{email}", uc.HandleUpdateUserRole)

	r.Post("/teacherRequests", tc.HandleCreateRequest)
	r.Get("/teacherRequests", tc.HandleListRequests)
	r.Patch("/teacherRequests/{id}", tc.HandleSetStatus)

	r.Post("/classes", cc.HandleCreateClass)
	r.Get("/classes", cc.HandleListClasses)
	r.Get("/classes/{id}", cc.HandleGetClass)
	r.Patch("/classes/{id}", cc.HandleUpdateClass)
	r.Delete("/classes/{id}", cc.HandleDeleteClass)

	r.Post("/enrollments", ec.HandleEnroll)
	r.Get("/enrollments/{studentId}", ec.HandleListByStudent)

	r.Post("/assignments", ac.HandleCreateAssignment)
	r.Get("/assignments/{classId}", ac.HandleListByClass)

	r.Post("/submissions", sc.HandleSubmit)
	r.Get("/submissions", sc.HandleListSubmissions)

	r.Post("/feedback", fc.HandleCreateFeedback)
	r.Get("/feedback", fc.HandleListFeedback)

	r.Post("/partners", pc.HandleCreatePartner)
	r.Get("/partners", pc.HandleListPartners)

	return r
}
