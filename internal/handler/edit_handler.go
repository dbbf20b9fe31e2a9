package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/florandefossez/capsules/internal/middleware"
	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/service"
)

// EditHandler serves the single admin endpoint. GET shows a blank or
// prefilled capsule form; POST branches on the "type" form field:
// delete_capsule, update_capsule, create_capsule, create_brand. Anything
// else redirects to the catalog root without touching the database.
type EditHandler struct {
	admin   *service.AdminService
	catalog *service.CatalogService
}

func NewEditHandler(admin *service.AdminService, catalog *service.CatalogService) *EditHandler {
	return &EditHandler{admin: admin, catalog: catalog}
}

// ShowForm renders the capsule form, prefilled when an id is given.
func (h *EditHandler) ShowForm(c *gin.Context) {
	idStr, hasID := c.GetQuery("id")
	if !hasID || idStr == "" {
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"Colors":    models.Colors,
			"Diameters": models.Diameters,
			"Values": gin.H{
				"Title": "", "Reference": "", "BrandName": "",
				"TextTop": "", "TextAside": "",
				"BackgroundColor": 0, "AsideColor": 0, "TextColor": 0,
				"TextAsideColor": 0, "Diameter": 0,
			},
		})
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	detail, err := h.catalog.GetCapsule(id)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Int("capsule_id", id).Msg("capsule lookup failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Colors":    models.Colors,
		"Diameters": models.Diameters,
		"Values": gin.H{
			"ID":              detail.Capsule.ID,
			"Title":           detail.Capsule.Title,
			"Reference":       detail.Reference,
			"BrandName":       detail.Brand.Name,
			"TextTop":         detail.Capsule.TextTop,
			"TextAside":       detail.Capsule.TextAside,
			"BackgroundColor": detail.Capsule.BackgroundColor,
			"AsideColor":      detail.Capsule.AsideColor,
			"TextColor":       detail.Capsule.TextColor,
			"TextAsideColor":  detail.Capsule.TextAsideColor,
			"Diameter":        detail.Capsule.Diameter,
		},
	})
}

// Submit dispatches the posted admin action.
func (h *EditHandler) Submit(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	action := c.PostForm("type")
	switch action {
	case "delete_capsule", "update_capsule", "create_capsule", "create_brand":
		if !sess.CanWrite() {
			c.String(http.StatusForbidden, "read-only account")
			return
		}
	default:
		c.Redirect(http.StatusFound, "/")
		return
	}

	switch action {
	case "delete_capsule":
		h.deleteCapsule(c)
	case "update_capsule", "create_capsule":
		h.saveCapsule(c, action)
	case "create_brand":
		h.createBrand(c)
	}
}

func (h *EditHandler) deleteCapsule(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return
	}
	if err := h.admin.DeleteCapsule(id); err != nil {
		h.writeError(c, err, id)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *EditHandler) saveCapsule(c *gin.Context, action string) {
	input, ok := h.capsuleInput(c)
	if !ok {
		return
	}

	var id int
	var err error
	if action == "update_capsule" {
		id, err = strconv.Atoi(c.Query("id"))
		if err != nil {
			c.String(http.StatusNotFound, "not found")
			return
		}
		err = h.admin.UpdateCapsule(id, input)
	} else {
		id, err = h.admin.CreateCapsule(input)
	}
	if err != nil {
		h.writeError(c, err, id)
		return
	}
	c.Redirect(http.StatusFound, "/info/"+strconv.Itoa(id))
}

func (h *EditHandler) createBrand(c *gin.Context) {
	if _, err := h.admin.CreateBrand(c.PostForm("name"), c.PostForm("description")); err != nil {
		h.writeError(c, err, 0)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// capsuleInput collects the capsule form fields. A color or diameter field
// that is not a number is a 400; range checks live in the service.
func (h *EditHandler) capsuleInput(c *gin.Context) (*service.CapsuleInput, bool) {
	input := &service.CapsuleInput{
		Title:     c.PostForm("title"),
		Reference: c.PostForm("reference"),
		BrandName: c.PostForm("brand_name"),
		TextTop:   c.PostForm("text_top"),
		TextAside: c.PostForm("text_aside"),
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"background_color", &input.BackgroundColor},
		{"aside_color", &input.AsideColor},
		{"text_color", &input.TextColor},
		{"text_aside_color", &input.TextAsideColor},
		{"diameter", &input.Diameter},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(c.PostForm(f.name))
		if err != nil {
			c.String(http.StatusBadRequest, "invalid %s", f.name)
			return nil, false
		}
		*f.dst = n
	}
	return input, true
}

func (h *EditHandler) writeError(c *gin.Context, err error, id int) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.String(http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrInvalidColor), errors.Is(err, models.ErrInvalidDiameter):
		c.String(http.StatusBadRequest, "invalid value")
	default:
		log.Error().Err(err).Int("capsule_id", id).Msg("admin mutation failed")
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
