// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Application status constants
const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// Request types

// data is the raw step payload; unknown fields are ignored by validation
type UpdateStepRequest struct {
	Step  int            `json:"step"`
	Data  map[string]any `json:"data"`
	Phone string         `json:"phone,omitempty"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response types

type CreateApplicationResponse struct {
	Success       bool   `json:"success"`
	ApplicationID string `json:"applicationId"`
}

type UpdateStepResponse struct {
	Success     bool `json:"success"`
	CurrentStep int  `json:"currentStep"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

type ListApplicationsResponse struct {
	Success      bool                 `json:"success"`
	Applications []ApplicationSummary `json:"applications"`
}

type ApplicationStepsResponse struct {
	Success     bool        `json:"success"`
	Application Application `json:"application"`
	Steps       []StepView  `json:"steps"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

type Application struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CurrentStep int       `json:"currentStep"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ApplicationSummary is the admin list view. Complete is derived from the
// recorded step count, never from CurrentStep.
type ApplicationSummary struct {
	ID            string    `json:"id"`
	SessionID     string    `json:"sessionId,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	CurrentStep   int       `json:"currentStep"`
	Status        string    `json:"status"`
	StepsRecorded int       `json:"stepsRecorded"`
	Complete      bool      `json:"complete"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StepView is one recorded step payload in the admin breakdown.
type StepView struct {
	Step      int            `json:"step"`
	Name      string         `json:"name"`
	Data      map[string]any `json:"data"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
