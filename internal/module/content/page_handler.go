package content

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/derive"
	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/lifecycle"
	"github.com/simp-lee/loanadmin/internal/middleware"
	"github.com/simp-lee/loanadmin/internal/pkg"
)

// carTypeRow is one rendered car-type row.
type carTypeRow struct {
	CarType    *domain.CarType
	Status     string
	BadgeClass string
}

// faqRow is one rendered FAQ row.
type faqRow struct {
	FAQ        *domain.FAQ
	Status     string
	BadgeClass string
}

// PageHandler renders the site-content screens.
type PageHandler struct {
	gw Gateway
	lc *lifecycle.Controller
}

// NewPageHandler creates a content page handler sharing the API handler's
// lifecycle controller.
func NewPageHandler(gw Gateway, h *Handler) *PageHandler {
	return &PageHandler{gw: gw, lc: h.lc}
}

// CarTypesPage renders the car-type list. The collection is small and
// unpaginated.
// GET /car-types
func (h *PageHandler) CarTypesPage(c *gin.Context) {
	data := gin.H{"CSRFToken": middleware.GetCSRFToken(c)}

	items, err := h.gw.ListCarTypes(c.Request.Context())
	if err != nil {
		data["Error"] = "Could not load car types, please try again"
	} else {
		rows := make([]carTypeRow, 0, len(items))
		for i := range items {
			ct := &items[i]
			rows = append(rows, carTypeRow{
				CarType:    ct,
				Status:     derive.ActiveLabel(ct.IsActive),
				BadgeClass: derive.StatusBadgeClass(lifecycle.ActiveStatus(ct.IsActive)),
			})
		}
		data["Rows"] = rows
	}

	c.HTML(http.StatusOK, "content/cartypes.html", data)
}

// NewCarTypePage renders the car-type create form.
// GET /car-types/new
func (h *PageHandler) NewCarTypePage(c *gin.Context) {
	c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
		"IsEdit":    false,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// CreateCarTypeForm handles the car-type create form submission.
// POST /car-types
func (h *PageHandler) CreateCarTypeForm(c *gin.Context) {
	var req CarTypeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.CreateCarType(c.Request.Context(), req.input()); err != nil {
		c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not create the car type, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/car-types")
}

// EditCarTypePage renders the car-type edit form.
// GET /car-types/:id/edit
func (h *PageHandler) EditCarTypePage(c *gin.Context) {
	ct, err := getCarType(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
		"IsEdit":    true,
		"CarType":   ct,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// UpdateCarTypeForm handles the car-type edit form submission.
// POST /car-types/:id
func (h *PageHandler) UpdateCarTypeForm(c *gin.Context) {
	id := c.Param("id")

	var req CarTypeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.UpdateCarType(c.Request.Context(), id, req.input()); err != nil {
		c.HTML(http.StatusOK, "content/cartype_form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not save the car type, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/car-types")
}

// ToggleCarTypeForm flips a car type's active flag.
// POST /car-types/:id/toggle
func (h *PageHandler) ToggleCarTypeForm(c *gin.Context) {
	id := c.Param("id")

	ct, err := getCarType(c.Request.Context(), h.gw, id)
	if err != nil {
		renderGetError(c, err)
		return
	}

	if _, err := h.gw.UpdateCarType(c.Request.Context(), id, toggleCarTypeInput(ct)); err != nil {
		renderGetError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/car-types")
}

// DeleteCarTypeForm renders the delete confirmation screen.
// POST /car-types/:id/actions/delete
func (h *PageHandler) DeleteCarTypeForm(c *gin.Context) {
	ct, err := getCarType(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	token, err := h.lc.Begin(lifecycle.KindCarType, lifecycle.ActionDelete, ct.ID, lifecycle.ActiveStatus(ct.IsActive))
	if err != nil {
		c.Redirect(http.StatusFound, "/car-types")
		return
	}

	c.HTML(http.StatusOK, "content/confirm.html", gin.H{
		"Title":     "Delete car type",
		"Name":      ct.Name,
		"Token":     token,
		"Return":    "/car-types",
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// FAQsPage renders the FAQ list.
// GET /faqs
func (h *PageHandler) FAQsPage(c *gin.Context) {
	data := gin.H{"CSRFToken": middleware.GetCSRFToken(c)}

	items, err := h.gw.ListFAQs(c.Request.Context())
	if err != nil {
		data["Error"] = "Could not load FAQs, please try again"
	} else {
		rows := make([]faqRow, 0, len(items))
		for i := range items {
			faq := &items[i]
			rows = append(rows, faqRow{
				FAQ:        faq,
				Status:     derive.ActiveLabel(faq.IsActive),
				BadgeClass: derive.StatusBadgeClass(lifecycle.ActiveStatus(faq.IsActive)),
			})
		}
		data["Rows"] = rows
	}

	c.HTML(http.StatusOK, "content/faqs.html", data)
}

// NewFAQPage renders the FAQ create form.
// GET /faqs/new
func (h *PageHandler) NewFAQPage(c *gin.Context) {
	c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
		"IsEdit":    false,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// CreateFAQForm handles the FAQ create form submission.
// POST /faqs
func (h *PageHandler) CreateFAQForm(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.CreateFAQ(c.Request.Context(), req.input()); err != nil {
		c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
			"IsEdit":    false,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not create the FAQ, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/faqs")
}

// EditFAQPage renders the FAQ edit form.
// GET /faqs/:id/edit
func (h *PageHandler) EditFAQPage(c *gin.Context) {
	faq, err := getFAQ(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
		"IsEdit":    true,
		"FAQ":       faq,
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// UpdateFAQForm handles the FAQ edit form submission.
// POST /faqs/:id
func (h *PageHandler) UpdateFAQForm(c *gin.Context) {
	id := c.Param("id")

	var req FAQRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     "Please check the highlighted fields",
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	if _, err := h.gw.UpdateFAQ(c.Request.Context(), id, req.input()); err != nil {
		c.HTML(http.StatusOK, "content/faq_form.html", gin.H{
			"IsEdit":    true,
			"Form":      req,
			"Error":     pkg.SafeMessage(err, "Could not save the FAQ, please try again"),
			"CSRFToken": middleware.GetCSRFToken(c),
		})
		return
	}

	c.Redirect(http.StatusFound, "/faqs")
}

// ToggleFAQForm flips a FAQ entry's active flag.
// POST /faqs/:id/toggle
func (h *PageHandler) ToggleFAQForm(c *gin.Context) {
	id := c.Param("id")

	faq, err := getFAQ(c.Request.Context(), h.gw, id)
	if err != nil {
		renderGetError(c, err)
		return
	}

	if _, err := h.gw.UpdateFAQ(c.Request.Context(), id, toggleFAQInput(faq)); err != nil {
		renderGetError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/faqs")
}

// DeleteFAQForm renders the delete confirmation screen.
// POST /faqs/:id/actions/delete
func (h *PageHandler) DeleteFAQForm(c *gin.Context) {
	faq, err := getFAQ(c.Request.Context(), h.gw, c.Param("id"))
	if err != nil {
		renderGetError(c, err)
		return
	}

	token, err := h.lc.Begin(lifecycle.KindFAQ, lifecycle.ActionDelete, faq.ID, lifecycle.ActiveStatus(faq.IsActive))
	if err != nil {
		c.Redirect(http.StatusFound, "/faqs")
		return
	}

	c.HTML(http.StatusOK, "content/confirm.html", gin.H{
		"Title":     "Delete FAQ",
		"Name":      faq.Question,
		"Token":     token,
		"Return":    "/faqs",
		"CSRFToken": middleware.GetCSRFToken(c),
	})
}

// ConfirmForm completes a pending content delete.
// POST /content/actions/confirm
func (h *PageHandler) ConfirmForm(c *gin.Context) {
	ret := c.DefaultPostForm("return", "/car-types")

	var req ConfirmRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, ret)
		return
	}

	// Expired or replayed tokens just land back on the list; the record is
	// still there, so the outcome is visible either way.
	_ = h.lc.Confirm(c.Request.Context(), req.Token, req.Reason)
	c.Redirect(http.StatusFound, ret)
}

// renderGetError maps a lookup failure to the matching error screen.
func renderGetError(c *gin.Context, err error) {
	if domain.IsNotFound(err) {
		c.HTML(http.StatusNotFound, "errors/404.html", gin.H{})
		return
	}
	c.HTML(http.StatusInternalServerError, "errors/500.html", gin.H{})
}
