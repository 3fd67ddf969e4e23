package controllers

import (
	"errors"
	"strconv"

	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// ---------------- Categories ----------------

// GET /menu/categories/restaurant/:restaurantId
func (mc *MenuController) ListCategories(c *gin.Context) {
	restID, err := paramID(c, "restaurantId")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	cats, err := mc.Menu.ListCategories(c.Request.Context(), restID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/categories/:id
func (mc *MenuController) GetCategory(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	cat, err := mc.Menu.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, cat)
}

// POST /menu/categories (Admin, Staff)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var in services.CreateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := mc.Menu.CreateCategory(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, cat)
}

// DELETE /menu/categories/:id (Admin, Staff) — cascades to items
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := mc.Menu.DeleteCategory(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

// ---------------- Items ----------------

// GET /menu/items/category/:categoryId
func (mc *MenuController) ListItems(c *gin.Context) {
	catID, err := paramID(c, "categoryId")
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	items, err := mc.Menu.ListItems(c.Request.Context(), catID)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/items/:id
func (mc *MenuController) GetItem(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	item, err := mc.Menu.GetItem(c.Request.Context(), id)
	if err != nil {
		// a direct item read is a 404, unlike a bad cart line
		if errors.Is(err, services.ErrItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /menu/items/search?term=&minPrice=&maxPrice=
func (mc *MenuController) SearchItems(c *gin.Context) {
	term := c.Query("term")
	minPrice, err := optionalPrice(c.Query("minPrice"))
	if err != nil {
		resp.BadRequest(c, "invalid minPrice")
		return
	}
	maxPrice, err := optionalPrice(c.Query("maxPrice"))
	if err != nil {
		resp.BadRequest(c, "invalid maxPrice")
		return
	}

	items, err := mc.Menu.SearchItems(c.Request.Context(), term, minPrice, maxPrice)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /menu/items (Admin, Staff)
func (mc *MenuController) CreateItem(c *gin.Context) {
	var in services.CreateMenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Menu.CreateItem(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /menu/items/:id (Admin, Staff)
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var in services.UpdateMenuItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.Menu.UpdateItem(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu/items/:id (Admin, Staff)
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := mc.Menu.DeleteItem(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}

func optionalPrice(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
