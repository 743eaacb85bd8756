package controllers

import (
	"strconv"

	"github.com/Diyary311/onlineMenu/pkg/resp"
	"github.com/Diyary311/onlineMenu/services"
	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" form:"Name"`
}

// CategoryController serves the category CRUD of one kind; routes mount one
// instance per kind.
type CategoryController struct {
	Service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

// GET /api/<kind>category
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /api/<kind>category
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := ctl.Service.Create(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, category)
}

// PUT /api/<kind>category/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	category, err := ctl.Service.Update(uint(id), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, category)
}

// DELETE /api/<kind>category/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}
