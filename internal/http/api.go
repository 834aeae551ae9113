package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"course-api/internal/domain"
	"course-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users   service.UserService
	courses service.CourseService
}

func NewHandler(users service.UserService, courses service.CourseService) *Handler {
	return &Handler{
		users:   users,
		courses: courses,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	authed := h.authenticateUser()

	router.GET("/users", authed, h.getCurrentUser)
	router.POST("/users", h.createUser)

	router.GET("/courses", h.listCourses)
	router.GET("/courses/:id", h.getCourse)
	router.POST("/courses", authed, h.createCourse)
	router.PUT("/courses/:id", authed, h.updateCourse)
	router.DELETE("/courses/:id", authed, h.deleteCourse)
}

const principalKey = "currentUser"

// authenticateUser verifies HTTP Basic credentials and attaches the
// resolved user to the request context. Failures abort with a bare 401;
// the response never reveals whether the email or the password was wrong.
func (h *Handler) authenticateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := h.users.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

func principal(c *gin.Context) *domain.User {
	user, _ := c.MustGet(principalKey).(*domain.User)
	return user
}

type createUserRequest struct {
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	EmailAddress *string `json:"emailAddress"`
	Password     *string `json:"password"`
}

type courseRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

func (h *Handler) getCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, userToResponse(principal(c)))
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.users.Register(c.Request.Context(), service.CreateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Messages})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}

func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Courses not found"})
		return
	}

	resp := make([]CourseResponse, len(courses))
	for i := range courses {
		resp[i] = courseToResponse(&courses[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		h.renderCourseError(c, err)
		return
	}

	c.JSON(http.StatusOK, courseToResponse(course))
}

func (h *Handler) createCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courses.Create(c.Request.Context(), principal(c).ID, courseInput(req))
	if err != nil {
		h.renderCourseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	c.Status(http.StatusCreated)
}

func (h *Handler) updateCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.courses.Update(c.Request.Context(), id, principal(c).ID, courseInput(req))
	if err != nil {
		h.renderCourseError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/courses/%d", course.ID))
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteCourse(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	if err := h.courses.Delete(c.Request.Context(), id, principal(c).ID); err != nil {
		h.renderCourseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// courseID parses the :id parameter. A non-numeric id can match no row,
// so it renders the same 404 a missing course would.
func courseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return 0, false
	}
	return id, true
}

func (h *Handler) renderCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
	case errors.Is(err, service.ErrNotCourseOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": "You are not the owner of this course"})
	default:
		if verr, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Messages})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func courseInput(req courseRequest) service.CourseInput {
	return service.CourseInput{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
}

// UserResponse carries the four public user fields; the password digest
// and timestamps are never rendered.
type UserResponse struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// CourseResponse excludes the created/updated timestamps and embeds the
// owner's public fields under the User key.
type CourseResponse struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	EstimatedTime   string        `json:"estimatedTime"`
	MaterialsNeeded string        `json:"materialsNeeded"`
	UserID          int64         `json:"userId"`
	User            *UserResponse `json:"User,omitempty"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	}
}

func courseToResponse(course *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:              course.ID,
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          course.UserID,
	}
	if course.Owner != nil {
		owner := userToResponse(course.Owner)
		resp.User = &owner
	}
	return resp
}
