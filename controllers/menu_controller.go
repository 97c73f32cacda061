package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"foodchef/pkg/resp"
	"foodchef/services"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /api/menu — active foods for public browsing
func (mc *MenuController) PublicMenu(c *gin.Context) {
	foods, err := mc.Menu.ActiveMenu()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, foods, len(foods))
}

// GET /api/menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	cats, err := mc.Menu.Categories()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OKCount(c, cats, len(cats))
}

// POST /admin/menu/foods
func (mc *MenuController) CreateFood(c *gin.Context) {
	var req services.CreateFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := mc.Menu.CreateFood(&req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, food)
}

// PATCH /admin/menu/foods/:id
func (mc *MenuController) UpdateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid food id")
		return
	}
	var req services.UpdateFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Menu.UpdateFood(uint(id), &req); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// POST /admin/menu/categories
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		SortOrder   int    `json:"sortOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Menu.CreateCategory(req.Name, req.Description, req.SortOrder)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, cat)
}
