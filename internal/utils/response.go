package utils

import "github.com/gofiber/fiber/v2"

// APIResponse describes the common structure for API responses. Single
// records travel in Data, collections in Items with a Total count.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Items   interface{} `json:"items,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SendSuccess sends a successful JSON response carrying a single record.
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, data)
}

// SendCreated sends a 201 response carrying the created record.
func SendCreated(c *fiber.Ctx, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusCreated, data)
}

// SendSuccessWithStatus sends a success payload using the provided HTTP status code.
func SendSuccessWithStatus(c *fiber.Ctx, status int, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
	})
}

// SendMessage sends a success response carrying only a message.
func SendMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Message: message,
	})
}

// SendList sends a collection response with its total count.
func SendList(c *fiber.Ctx, items interface{}, total int) error {
	return c.Status(fiber.StatusOK).JSON(APIResponse{
		Success: true,
		Items:   items,
		Total:   &total,
	})
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
