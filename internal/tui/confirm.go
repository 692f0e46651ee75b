package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-scanner/models"
)

// permissionDialog is the grant/deny overlay for one permission request.
type permissionDialog struct {
	request models.PermissionRequest
}

func (m permissionDialog) View() string {
	names := make([]string, 0, len(m.request.Kinds))
	for _, kind := range m.request.Kinds {
		names = append(names, string(kind))
	}

	content := "Allow access to " + strings.Join(names, " and ") + "?\n\n"
	content += "y allow    n deny"
	return overlayBoxStyle.Render(content)
}
