package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
)

// DeviceInfoMiddleware attaches a compact device description to the context
// so request logs can be correlated with the client that made them.
func DeviceInfoMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := useragent.Parse(c.Request.UserAgent())

		device := "Desktop"
		switch {
		case ua.Mobile:
			device = "Mobile"
		case ua.Tablet:
			device = "Tablet"
		case ua.Bot:
			device = "Bot"
		}

		c.Set("device_info", fmt.Sprintf("%s on %s (%s)", ua.Name, ua.OS, device))
		c.Next()
	}
}
