package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameshub/di"
	"gameshub/domain"
	"gameshub/middleware"
	"gameshub/usecase/project_usecase"
)

type createProjectRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Slug         string `json:"slug" validate:"required,slug"`
	ServiceStack string `json:"service_stack" validate:"omitempty,max=64"`
}

type updateProjectRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ServiceStack *string `json:"service_stack" validate:"omitempty,min=1,max=64"`
}

type createCredentialRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func registerProjectRoutes(protected *echo.Group, container *di.ApplicationComponents) {
	manage := middleware.RequireManager()

	protected.GET("/stacks", RestHandleListStacks(container))
	protected.GET("/projects", RestHandleListProjects(container))
	protected.POST("/projects", RestHandleCreateProject(container), manage)
	protected.GET("/projects/:id", RestHandleGetProject(container))
	protected.PATCH("/projects/:id", RestHandleUpdateProject(container), manage)
	protected.DELETE("/projects/:id", RestHandleDeleteProject(container), manage)

	protected.GET("/projects/:id/credentials", RestHandleListCredentials(container), manage)
	protected.POST("/projects/:id/credentials", RestHandleCreateCredential(container), manage)
	protected.DELETE("/projects/:id/credentials/:credID", RestHandleRevokeCredential(container), manage)
}

func RestHandleListStacks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string][]string{"stacks": container.ProjectUsecase.StackNames()})
	}
}

func RestHandleListProjects(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, err := pageParams(c)
		if err != nil {
			return handleError(c, err, "list_projects")
		}
		result, err := container.ProjectUsecase.ListProjects(c.Request().Context(), page)
		if err != nil {
			return handleError(c, err, "list_projects")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleCreateProject(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createProjectRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "create_project")
		}

		project, err := container.ProjectUsecase.CreateProject(c.Request().Context(), project_usecase.CreateProjectInput{
			Name:         req.Name,
			Slug:         req.Slug,
			ServiceStack: req.ServiceStack,
		})
		if err != nil {
			return handleError(c, err, "create_project")
		}
		return c.JSON(http.StatusCreated, project)
	}
}

func RestHandleGetProject(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "get_project")
		}
		project, err := container.ProjectUsecase.GetProject(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "get_project")
		}
		return c.JSON(http.StatusOK, project)
	}
}

func RestHandleUpdateProject(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "update_project")
		}
		var req updateProjectRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "update_project")
		}

		project, err := container.ProjectUsecase.UpdateProject(c.Request().Context(), id, domain.ProjectUpdate{
			Name:         req.Name,
			ServiceStack: req.ServiceStack,
		})
		if err != nil {
			return handleError(c, err, "update_project")
		}
		return c.JSON(http.StatusOK, project)
	}
}

func RestHandleDeleteProject(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "delete_project")
		}
		if err := container.ProjectUsecase.DeleteProject(c.Request().Context(), id); err != nil {
			return handleError(c, err, "delete_project")
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func RestHandleListCredentials(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "list_credentials")
		}
		creds, err := container.ProjectUsecase.ListCredentials(c.Request().Context(), id)
		if err != nil {
			return handleError(c, err, "list_credentials")
		}
		return c.JSON(http.StatusOK, map[string]any{"items": creds})
	}
}

// RestHandleCreateCredential returns the plaintext key. It is never shown again.
func RestHandleCreateCredential(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "create_credential")
		}
		var req createCredentialRequest
		if err := bindAndValidate(c, &req); err != nil {
			return handleError(c, err, "create_credential")
		}

		createdBy := middleware.AdminClaimsFrom(c).AdminID
		issued, err := container.ProjectUsecase.CreateCredential(c.Request().Context(), id, req.Name, &createdBy)
		if err != nil {
			return handleError(c, err, "create_credential")
		}
		c.Response().Header().Set("Cache-Control", "no-store")
		return c.JSON(http.StatusCreated, issued)
	}
}

func RestHandleRevokeCredential(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuidParam(c, "id")
		if err != nil {
			return handleError(c, err, "revoke_credential")
		}
		credID, err := uuidParam(c, "credID")
		if err != nil {
			return handleError(c, err, "revoke_credential")
		}
		if err := container.ProjectUsecase.RevokeCredential(c.Request().Context(), id, credID); err != nil {
			return handleError(c, err, "revoke_credential")
		}
		return c.NoContent(http.StatusNoContent)
	}
}
