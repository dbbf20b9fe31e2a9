package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/florandefossez/capsules/internal/models"
	"github.com/florandefossez/capsules/internal/service"
)

// searchFields are the form/query parameters the listing understands,
// shared between the search form and the listing handler.
var searchFields = []string{
	"brand_name", "reference", "text_top", "text_aside",
	"background_color", "aside_color", "text_color", "text_aside_color",
	"diameter",
}

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// intQuery returns the query parameter as *int, nil when absent, empty or
// not a number. Presence, not value, decides whether a filter applies.
func intQuery(c *gin.Context, name string) *int {
	v, ok := c.GetQuery(name)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// Index renders the paginated capsule listing with all optional filters
// applied.
func (h *CatalogHandler) Index(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	params := &service.ListParams{
		Page:            page,
		BrandName:       c.Query("brand_name"),
		Reference:       c.Query("reference"),
		TextTop:         c.Query("text_top"),
		TextAside:       c.Query("text_aside"),
		BackgroundColor: intQuery(c, "background_color"),
		AsideColor:      intQuery(c, "aside_color"),
		TextColor:       intQuery(c, "text_color"),
		TextAsideColor:  intQuery(c, "text_aside_color"),
		Diameter:        intQuery(c, "diameter"),
	}

	result, err := h.catalog.ListCapsules(params)
	if err != nil {
		log.Error().Err(err).Msg("capsule listing failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Prev/next keep every active filter, only the page changes.
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page-1))
	prevURL := "/?" + q.Encode()
	q.Set("page", strconv.Itoa(page+1))
	nextURL := "/?" + q.Encode()

	c.HTML(http.StatusOK, "caps.html", gin.H{
		"Caps":    result.Items,
		"Page":    result.Page,
		"Total":   result.Total,
		"Brand":   result.Brand,
		"HasPrev": result.HasPrev,
		"HasNext": result.HasNext,
		"PrevURL": prevURL,
		"NextURL": nextURL,
	})
}

// Info renders the detail view of a single capsule.
func (h *CatalogHandler) Info(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
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

	c.HTML(http.StatusOK, "info.html", gin.H{
		"Cap":       detail.Capsule,
		"Brand":     detail.Brand,
		"Reference": detail.Reference,
		"Colors":    models.Colors,
		"Diameters": models.Diameters,
	})
}

// ShowSearch renders the search form seeded with the color and diameter
// enumerations.
func (h *CatalogHandler) ShowSearch(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", gin.H{
		"Colors":    models.Colors,
		"Diameters": models.Diameters,
	})
}

// Search forwards the submitted form to the listing as query parameters.
// Empty fields are omitted so they do not activate filters.
func (h *CatalogHandler) Search(c *gin.Context) {
	q := url.Values{}
	for _, field := range searchFields {
		if v := c.PostForm(field); v != "" {
			q.Set(field, v)
		}
	}
	target := "/"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	c.Redirect(http.StatusFound, target)
}

// Brands renders the alphabetical brand index.
func (h *CatalogHandler) Brands(c *gin.Context) {
	groups, err := h.catalog.BrandsGrouped()
	if err != nil {
		log.Error().Err(err).Msg("brand listing failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "brand.html", gin.H{"Groups": groups})
}
