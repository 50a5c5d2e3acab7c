package crm

import (
	"go-recruit/internal/domain"
	"go-recruit/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes guards the CRM surface with casbin policies on top of
// the coarse role check, so agencies can trim consultant access per
// resource without a deploy.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	group := r.Group("/crm")
	group.Use(
		middleware.AuthMiddleware(),
		middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleConsultant),
	)
	{
		companies := group.Group("/companies")
		{
			companies.GET("", middleware.RBACAuthorize(rbacService, "crm_company", "read"), handler.ListCompanies)
			companies.POST("", middleware.RBACAuthorize(rbacService, "crm_company", "write"), handler.CreateCompany)
			companies.GET("/:id", middleware.RBACAuthorize(rbacService, "crm_company", "read"), handler.GetCompany)
			companies.PATCH("/:id", middleware.RBACAuthorize(rbacService, "crm_company", "write"), handler.UpdateCompany)
			companies.DELETE("/:id", middleware.RoleMiddleware(domain.RoleAdmin), handler.DeleteCompany)
			companies.GET("/:id/contacts", middleware.RBACAuthorize(rbacService, "crm_company", "read"), handler.ListContacts)
			companies.POST("/:id/contacts", middleware.RBACAuthorize(rbacService, "crm_company", "write"), handler.AddContact)
		}
		group.DELETE("/contacts/:contactId", middleware.RBACAuthorize(rbacService, "crm_company", "write"), handler.DeleteContact)

		positions := group.Group("/positions")
		{
			positions.GET("", middleware.RBACAuthorize(rbacService, "crm_position", "read"), handler.ListPositions)
			positions.POST("", middleware.RBACAuthorize(rbacService, "crm_position", "write"), handler.CreatePosition)
			positions.GET("/:id", middleware.RBACAuthorize(rbacService, "crm_position", "read"), handler.GetPosition)
			positions.PATCH("/:id", middleware.RBACAuthorize(rbacService, "crm_position", "write"), handler.UpdatePosition)
			positions.DELETE("/:id", middleware.RoleMiddleware(domain.RoleAdmin), handler.DeletePosition)
			positions.POST("/:id/assign", middleware.RBACAuthorize(rbacService, "crm_position", "write"), handler.AssignConsultant)
			positions.GET("/:id/pool", middleware.RBACAuthorize(rbacService, "crm_position", "read"), handler.ListPool)
			positions.POST("/:id/pool", middleware.RBACAuthorize(rbacService, "crm_position", "write"), handler.AddPoolCandidate)
		}
		group.PATCH("/pool/:entryId", middleware.RBACAuthorize(rbacService, "crm_position", "write"), handler.UpdatePoolResult)
	}
}
