package controllers

import (
	"strconv"

	"github.com/Diyary311/onlineMenu/pkg/resp"
	"github.com/Diyary311/onlineMenu/services"
	"github.com/gin-gonic/gin"
)

// ItemRequest binds the multipart form of item writes. Field names follow
// the established form contract (PascalCase).
type ItemRequest struct {
	Name        string  `form:"Name"`
	CategoryID  uint    `form:"CategoryId"`
	Price       float64 `form:"Price"`
	Size        float64 `form:"Size"`
	TypeOfMoney string  `form:"TypeOfMoney"`
}

// ItemController serves the item CRUD of one kind; routes mount one
// instance per kind.
type ItemController struct {
	Service *services.ItemService
}

func NewItemController(service *services.ItemService) *ItemController {
	return &ItemController{Service: service}
}

func (ctl *ItemController) input(req ItemRequest) services.ItemInput {
	return services.ItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Size:        req.Size,
		TypeOfMoney: req.TypeOfMoney,
		CategoryID:  req.CategoryID,
	}
}

// GET /api/<kind>
func (ctl *ItemController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/<kind>  (multipart: Name, CategoryId, Price, Size, TypeOfMoney, Image)
func (ctl *ItemController) Create(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	image, err := c.FormFile("Image")
	if err != nil {
		image = nil // no image attached
	}

	item, err := ctl.Service.Create(ctl.input(req), image)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}

// PUT /api/<kind>/:id
func (ctl *ItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ItemRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	image, err := c.FormFile("Image")
	if err != nil {
		image = nil
	}

	item, err := ctl.Service.Update(uint(id), ctl.input(req), image)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/<kind>/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Service.Delete(uint(id)); err != nil {
		respondError(c, err)
		return
	}
	resp.NoContent(c)
}
