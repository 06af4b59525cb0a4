package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialnet/social-api/internal/core/ports"
)

// ProfileHandler handles the current user's profile.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get returns the authenticated user's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Get(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}

// Update applies a partial profile edit from a multipart form. Fields absent
// from the form are left unchanged; the profile picture upload is stored as a
// data-URI.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        full_name        formData  string  false  "Display name"
// @Param        date_of_birth    formData  string  false  "Date of birth"
// @Param        profile_picture  formData  file    false  "Avatar image"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /profile [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var in ports.UpdateProfileInput

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if values, ok := form["full_name"]; ok && len(values) > 0 {
		in.FullName = &values[0]
	}
	if values, ok := form["date_of_birth"]; ok && len(values) > 0 {
		in.DateOfBirth = &values[0]
	}

	if fh, err := c.FormFile("profile_picture"); err == nil {
		picture, err := encodeImageFile(fh)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		in.ProfilePicture = &picture
	} else if !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile_picture upload")
	}

	profile, err := h.service.Update(c.Request().Context(), user.ID, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(profile))
}
