package utils

import (
	"log"

	"github.com/DominicRaja2005/library-management-system/internal/models"
)

func ExportData(logs []models.AuditLog) error {
	for _, entry := range logs {
		//change with actual calls
		log.Println("[AUDIT EXPORT]", entry.Timestamp, entry.Entity, entry.Action, entry.PerformedBy)
	}
	return nil
}
