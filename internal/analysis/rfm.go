package analysis

import "github.com/lox/bikeusage/internal/models"

// RFMSummary returns the fixed Recency/Frequency/Monetary tier table. It is
// descriptive only and does not depend on the dataset.
func RFMSummary() []models.RFMRow {
	return []models.RFMRow{
		{Recency: "High (Recently Active)", Frequency: "High (Frequent Users)", Monetary: "High Contribution"},
		{Recency: "Medium", Frequency: "Medium", Monetary: "Medium"},
		{Recency: "Low (Inactive)", Frequency: "Low", Monetary: "Low"},
	}
}
