package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/controllers"
	"github.com/sheikh-riyadh/captake-server/middleware"
)

// Controllers bundles everything route registration needs.
type Controllers struct {
	Auth            *controllers.AuthController
	Orders          *controllers.OrderController
	Catalog         *controllers.CatalogController
	Recommendations *controllers.RecommendationController
	Reviews         *controllers.ReviewController
}

// Register wires every endpoint. Paths match the legacy frontends, so they
// stay flat rather than grouped by resource.
func Register(r *gin.Engine, ctrl Controllers, jwtSecret []byte) {
	verify := middleware.Verify(jwtSecret)

	// Session
	r.POST("/jwt", ctrl.Auth.IssueToken)
	r.GET("/logout", ctrl.Auth.Logout)

	// Users
	r.GET("/user/:email", verify, controllers.GetUser)
	r.POST("/user-create", controllers.CreateUser)
	r.PATCH("/user-update", verify, controllers.UpdateUser)

	// Addresses
	r.GET("/user-address", verify, controllers.GetAddresses)
	r.POST("/user-address-create", verify, controllers.CreateAddress)
	r.PATCH("/user-address-update", verify, controllers.UpdateAddress)
	r.DELETE("/user-delete-address", verify, controllers.DeleteAddress)

	// Reports and feedback
	r.GET("/user-report", verify, controllers.GetMyReports)
	r.POST("/user-add-report", verify, controllers.CreateReport)
	r.GET("/reported-seller", verify, controllers.GetReportedSeller)
	r.POST("/feedback", verify, controllers.CreateFeedback)

	// Catalog
	r.GET("/seller-products/:sellerId", ctrl.Catalog.SellerProducts)
	r.GET("/most-views-products", ctrl.Catalog.MostViewedProducts)
	r.GET("/seller-most-views-products", ctrl.Catalog.SellerMostViewedProducts)
	r.GET("/seller-latest-product", ctrl.Catalog.SellerLatestProducts)
	r.GET("/product-search", ctrl.Catalog.SearchProducts)
	r.GET("/category-product", ctrl.Catalog.CategoryProducts)
	r.GET("/category-products", ctrl.Catalog.CategoryProductsByEffectivePrice)
	r.PATCH("/update-views", ctrl.Catalog.UpdateViews)

	// Recommendations
	r.GET("/seller-rating-products", ctrl.Recommendations.SellerRatingProducts)

	// Product Q&A
	r.GET("/product-questions", controllers.GetProductQuestions)
	r.GET("/user-product-questions", verify, controllers.GetMyQuestions)
	r.POST("/product-question-create", verify, controllers.CreateQuestion)
	r.PATCH("/product-question-update", verify, controllers.UpdateQuestion)
	// Deployed clients call the misspelled path.
	r.PATCH("/product-qestion-update", verify, controllers.UpdateQuestion)

	// Orders
	r.GET("/order", verify, ctrl.Orders.GetOrders)
	r.POST("/create-order", verify, ctrl.Orders.CreateOrder)
	r.PATCH("/update-order", verify, ctrl.Orders.UpdateOrder)

	// Reviews
	r.GET("/review", verify, ctrl.Reviews.GetMyReviews)
	r.GET("/review-orderId", verify, ctrl.Reviews.GetReviewByOrderID)
	r.GET("/review-productId", ctrl.Reviews.GetReviewsByProductID)
	r.GET("/seller-all-review", ctrl.Reviews.GetSellerReviews)
	r.POST("/create-review", verify, ctrl.Reviews.CreateReview)

	// Sellers
	r.GET("/all-seller", controllers.GetAllSellers)
	r.GET("/seller-banner/:sellerId", controllers.GetSellerBanners)
	r.GET("/seller-default-banner/:sellerId", controllers.GetSellerStorefront)
	r.GET("/seller-return-policy/:sellerId", controllers.GetReturnPolicy)
	r.GET("/seller-brands/:sellerId", controllers.GetSellerBrands)
	r.GET("/seller-announcement/:sellerId", controllers.GetSellerAnnouncement)

	// Admin
	r.GET("/admin-default-banner", controllers.GetAdminBanner)
	r.GET("/admin-message/:email", verify, controllers.GetAdminMessages)

	// Categories
	r.GET("/categories", controllers.GetCategories)
}
