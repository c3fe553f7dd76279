// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (points, settings, project) and contracts only.
package domain
