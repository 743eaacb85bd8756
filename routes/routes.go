package routes

import (
	"github.com/Diyary311/onlineMenu/configs"
	"github.com/Diyary311/onlineMenu/controllers"
	"github.com/Diyary311/onlineMenu/entity"
	"github.com/Diyary311/onlineMenu/middlewares"
	"github.com/Diyary311/onlineMenu/repository"
	"github.com/Diyary311/onlineMenu/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires the whole REST surface: auth, one category and one
// item CRUD per kind, and the static image mount. Catalog mutations all sit
// behind an Admin bearer token.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	images := services.NewImageStore(cfg.UploadDir)
	r.Static("/Images", images.Dir())

	authSvc := services.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	authCtrl := controllers.NewAuthController(authSvc)

	a := r.Group("/api/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/all", authCtrl.All)
	}

	r.GET("/api/jwtgen/generate", controllers.GenerateSecret)

	admin := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	for _, kind := range entity.Kinds() {
		catRepo := repository.NewCategoryRepository(db, kind)
		catCtrl := controllers.NewCategoryController(services.NewCategoryService(catRepo))

		cg := r.Group("/api/" + kind.CategoryMount())
		{
			cg.GET("", catCtrl.List)
			cg.POST("", admin, catCtrl.Create)
			cg.PUT("/:id", admin, catCtrl.Update)
			cg.DELETE("/:id", admin, catCtrl.Delete)
		}

		itemSvc := services.NewItemService(repository.NewItemRepository(db, kind), catRepo, images)
		itemCtrl := controllers.NewItemController(itemSvc)

		ig := r.Group("/api/" + kind.ItemMount())
		{
			ig.GET("", itemCtrl.List)
			ig.POST("", admin, itemCtrl.Create)
			ig.PUT("/:id", admin, itemCtrl.Update)
			ig.DELETE("/:id", admin, itemCtrl.Delete)
		}
	}
}
