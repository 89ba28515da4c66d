package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docchat/internal/model"
	"docchat/internal/service"
	"docchat/internal/storage"
)

// chatRequest is the POST /chat body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse wraps the bot's reply messages.
type chatResponse struct {
	Messages []service.Message `json:"messages"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db and store may be nil when the service runs purely on the in-memory
// simulated dataset. Handlers stay free of business logic: all query
// understanding lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, chatSvc service.ChatService, querySvc service.QueryService, store storage.Storage) {
	// Serve the OpenAPI spec and a static Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/chat", GetWelcome(chatSvc))
	app.Post("/chat", PostChat(chatSvc))

	app.Get("/clients", ListClients(querySvc))
	app.Get("/clients/:id/documents", ListClientDocuments(querySvc))

	app.Get("/documents/download/*", DownloadDocument(store))
}

// HealthCheck reports dependency health. With no database configured the
// store is the in-process simulated dataset, which is always available.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "store": "memory"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy", "store": "postgres"})
	}
}

// LivenessProbe is a plain liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetWelcome returns the conversation-opening message.
func GetWelcome(chatSvc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(chatResponse{Messages: []service.Message{chatSvc.Welcome()}})
	}
}

// PostChat processes one user message and returns the bot's replies.
// Non-success query outcomes are conversation replies, not transport errors,
// so they are returned with status 200.
func PostChat(chatSvc service.ChatService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req chatRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.Message == "" {
			return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
		}
		msgs := chatSvc.Reply(c.UserContext(), req.Message)
		return c.JSON(chatResponse{Messages: msgs})
	}
}

// ListClients returns the known client ids.
func ListClients(querySvc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clients, err := querySvc.Clients(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"clients": clients})
	}
}

// ListClientDocuments returns one client's documents, optionally filtered by
// ?type=fatura|guia_transporte. Unlike the chat route, here the outcome maps
// onto HTTP status codes.
func ListClientDocuments(querySvc service.QueryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docType := model.DocumentType(c.Query("type"))
		if docType != "" && !docType.Valid() {
			return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", "unknown document type")
		}

		res := querySvc.Search(c.UserContext(), c.Params("id"), docType)
		switch res.Kind {
		case model.ResultInvalid:
			return writeError(c, fiber.StatusBadRequest, "INVALID_CLIENT_ID", res.Message)
		case model.ResultEmpty:
			if res.Reason == model.ReasonInternalError {
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", res.Message)
		}
		return c.JSON(fiber.Map{"documents": res.Documents, "count": len(res.Documents)})
	}
}

// DownloadDocument streams a document from object storage by its storage
// path. Unavailable when the service runs without object storage.
func DownloadDocument(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "object storage is not configured")
		}
		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "PATH_REQUIRED", "document path is required")
		}

		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.SendStream(rc, int(info.Size))
	}
}
