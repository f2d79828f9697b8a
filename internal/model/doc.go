// Package model defines domain entities and data structures for the
// HireSphere API.
//
// The model package contains all struct definitions for domain objects and
// error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Company: Job-posting account with authentication credentials
//   - Applicant: Identity record mirrored from the external identity provider
//   - Job: A posting owned by exactly one company
//   - Application: One applicant's application to one job
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Job struct {
//	    ID      string `json:"id"`
//	    Title   string `json:"title"`
//	    Visible bool   `json:"visible"`
//	}
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string `json:"type"`
//	    Title   string `json:"title"`
//	    Status  int    `json:"status"`
//	    Detail  string `json:"detail"`
//	}
package model
