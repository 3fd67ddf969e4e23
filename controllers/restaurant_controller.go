package controllers

import (
	"github.com/kapilkaushal24/restaurant-management-api/pkg/resp"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Restaurants *services.RestaurantService
}

func NewRestaurantController(restaurants *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	out, err := rc.Restaurants.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/search?term=
func (rc *RestaurantController) Search(c *gin.Context) {
	out, err := rc.Restaurants.Search(c.Request.Context(), c.Query("term"))
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (rc *RestaurantController) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := rc.Restaurants.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants (Admin)
func (rc *RestaurantController) Create(c *gin.Context) {
	var in services.RestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Restaurants.Create(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /restaurants/:id (Admin)
func (rc *RestaurantController) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var in services.RestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Restaurants.Update(c.Request.Context(), id, in)
	if err != nil {
		respondErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id (Admin)
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := rc.Restaurants.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	resp.NoContent(c)
}
