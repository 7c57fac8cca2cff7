// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateStepRequest: step, data (map[string]any), phone (optional)
  - AdminLoginRequest: username, password
  - RegisterRequest: email, password

# Response Types

Types for JSON responses:

  - CreateApplicationResponse: success, applicationId
  - UpdateStepResponse: success, currentStep
  - AdminLoginResponse: success, token
  - ListApplicationsResponse: success, applications
  - ApplicationStepsResponse: success, application, steps
  - RegisterResponse: success, userId
  - MessageResponse: success, message
  - ErrorResponse: success, error, message

# Domain Types

Internal data structures:

  - Application: one visitor's multi-step submission
  - ApplicationSummary: admin list row with derived completeness
  - StepView: one recorded step payload with its name and timestamp

# Constants

Status values:

	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
*/
package models
