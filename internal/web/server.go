package web

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

const tokenCookie = "jwtToken"

// Server renders the UI pages. It keeps no state beyond the token cookie.
type Server struct {
	api       *Client
	logger    zerolog.Logger
	templates *template.Template
}

func NewServer(api *Client, logger zerolog.Logger) *Server {
	return &Server{
		api:       api,
		logger:    logger,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.gohtml")),
	}
}

// Router wires the UI routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.home)
	r.Get("/regions", s.regionList)
	r.Get("/regions/add", s.regionAddForm)
	r.Post("/regions/add", s.regionAdd)
	r.Get("/regions/edit/{id}", s.regionEditForm)
	r.Post("/regions/edit/{id}", s.regionEdit)
	r.Post("/regions/delete/{id}", s.regionDelete)
	r.Get("/walks", s.walkList)
	r.Get("/register", s.registerForm)
	r.Post("/register", s.register)
	r.Get("/login", s.loginForm)
	r.Post("/login", s.login)
	r.Get("/logout", s.logout)

	return r
}

type pageData struct {
	Title    string
	LoggedIn bool
	Error    string
	Regions  []dto.RegionDto
	Region   *dto.RegionDto
	Walks    []dto.WalkDto
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	data.LoggedIn = s.token(r) != ""
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("failed to render page")
	}
}

func (s *Server) token(r *http.Request) string {
	cookie, err := r.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// fail renders the page with an error banner, or bounces expired sessions
// to the login form.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, name string, data pageData, err error) {
	if err == ErrUnauthorized {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	s.logger.Warn().Err(err).Str("page", name).Msg("API call failed")
	data.Error = err.Error()
	s.render(w, r, name, data)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home.gohtml", pageData{Title: "NZ Walks"})
}

func (s *Server) regionList(w http.ResponseWriter, r *http.Request) {
	regions, err := s.api.ListRegions(s.token(r))
	if err != nil {
		s.fail(w, r, "regions.gohtml", pageData{Title: "Regions"}, err)
		return
	}
	s.render(w, r, "regions.gohtml", pageData{Title: "Regions", Regions: regions})
}

func (s *Server) regionAddForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "region_form.gohtml", pageData{Title: "Add Region"})
}

func (s *Server) regionAdd(w http.ResponseWriter, r *http.Request) {
	req := dto.AddRegionRequestDto{
		Code: r.FormValue("code"),
		Name: r.FormValue("name"),
	}
	if url := r.FormValue("regionImageUrl"); url != "" {
		req.RegionImageUrl = &url
	}

	if err := s.api.CreateRegion(s.token(r), req); err != nil {
		s.fail(w, r, "region_form.gohtml", pageData{Title: "Add Region"}, err)
		return
	}
	http.Redirect(w, r, "/regions", http.StatusSeeOther)
}

func (s *Server) regionEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	region, err := s.api.GetRegion(s.token(r), id)
	if err != nil {
		s.fail(w, r, "region_form.gohtml", pageData{Title: "Edit Region"}, err)
		return
	}
	s.render(w, r, "region_form.gohtml", pageData{Title: "Edit Region", Region: region})
}

func (s *Server) regionEdit(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	req := dto.UpdateRegionRequestDto{
		Code: r.FormValue("code"),
		Name: r.FormValue("name"),
	}
	if url := r.FormValue("regionImageUrl"); url != "" {
		req.RegionImageUrl = &url
	}

	if err := s.api.UpdateRegion(s.token(r), id, req); err != nil {
		s.fail(w, r, "region_form.gohtml", pageData{Title: "Edit Region"}, err)
		return
	}
	http.Redirect(w, r, "/regions", http.StatusSeeOther)
}

func (s *Server) regionDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.api.DeleteRegion(s.token(r), id); err != nil {
		s.fail(w, r, "regions.gohtml", pageData{Title: "Regions"}, err)
		return
	}
	http.Redirect(w, r, "/regions", http.StatusSeeOther)
}

func (s *Server) walkList(w http.ResponseWriter, r *http.Request) {
	walks, err := s.api.ListWalks(s.token(r))
	if err != nil {
		s.fail(w, r, "walks.gohtml", pageData{Title: "Walks"}, err)
		return
	}
	s.render(w, r, "walks.gohtml", pageData{Title: "Walks", Walks: walks})
}

func (s *Server) registerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register.gohtml", pageData{Title: "Register"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	roles := []string{"Reader"}
	if writer, _ := strconv.ParseBool(r.FormValue("writer")); writer {
		roles = append(roles, "Writer")
	}

	err := s.api.Register(dto.RegisterRequestDto{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
		Roles:    roles,
	})
	if err != nil {
		s.fail(w, r, "register.gohtml", pageData{Title: "Register"}, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login.gohtml", pageData{Title: "Login"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	token, err := s.api.Login(r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		s.fail(w, r, "login.gohtml", pageData{Title: "Login"}, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
