// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the HTTP
// transport of the account server.
//
// All Msg* constants are client-facing strings written into the "message"
// field of the response envelope. Keeping them in one place keeps the
// wording of the API consistent.
package app

// Success messages.
const (
	MsgUserRegistered       = "User registered successfully"
	MsgUserLoggedIn         = "User logged in successfully"
	MsgUserLoggedOut        = "User logged out successfully"
	MsgAccessTokenRefreshed = "Access token refreshed"
	MsgPasswordChanged      = "Password changed successfully"
	MsgCurrentUserFetched   = "Current user fetched successfully"
	MsgAccountDeleted       = "Account deleted successfully"
	MsgAvatarUpdated        = "Avatar image updated successfully"
	MsgCoverImageUpdated    = "Cover image updated successfully"
)

// Failure messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	MsgAllFieldsRequired       = "All fields are required"
	MsgInvalidEmail            = "Email is not valid"
	MsgUsernameOrEmailRequired = "username or email is required"
	MsgPasswordRequired        = "password is required"
	MsgPasswordsRequired       = "old and new passwords are required"
	MsgPasswordTooLong         = "password must not be longer than 72 bytes"
	MsgSamePassword            = "New password must differ from the old one"

	MsgUserAlreadyExists = "User with email or username already exists"
	MsgUserNotFound      = "User does not exist"

	// MsgInvalidCredentials covers both an unknown account and a wrong
	// password.
	MsgInvalidCredentials = "Invalid user credentials"
	MsgInvalidOldPassword = "Invalid old Password"
	MsgUnauthorized       = "Unauthorized request"
	MsgInvalidAccessToken = "Invalid Access Token"
	MsgInvalidRefresh     = "Refresh token is expired or used"

	MsgAvatarRequired     = "Avatar file is required"
	MsgAvatarMissing      = "avatar file is missing"
	MsgCoverImageMissing  = "Cover image file is missing"
	MsgAvatarUpload       = "Error while uploading avatar"
	MsgCoverImageUpload   = "Error while uploading cover image"
	MsgImageHostFailed    = "Image host request failed"
	MsgRequestTooLarge    = "Request body is too large"
	MsgRouteNotFound      = "Route not found"
	MsgServiceUnavailable = "Service is temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
