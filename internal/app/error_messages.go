// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// services and the terminal UI.
//
// All Msg* constants are shown verbatim in the "Last Result" area of the
// menu. Keeping them in one place keeps the wording consistent between the
// command handlers and their tests.
package app

const (
	// MsgInvalidChoice is shown when the menu input matches no action.
	MsgInvalidChoice = "Invalid choice. Please try again."

	// MsgInvalidCount is shown when the code count is not an integer in
	// [1, 2000].
	MsgInvalidCount = "Invalid Count. Must be between 1 and 2000."

	// MsgInvalidLength is shown when the code length is not 7 or 8.
	MsgInvalidLength = "Invalid Length. Must be 7 or 8."

	// MsgInvalidCode is shown when the code to redeem is blank or not 7 or 8
	// characters long.
	MsgInvalidCode = "Invalid Code. Must be 7 or 8 characters."

	// MsgCodesGenerated is shown when the hub pushes a successful generation
	// result.
	MsgCodesGenerated = "Codes generated successfully."

	// MsgCodesNotGenerated is shown when the hub pushes a failed generation
	// result.
	MsgCodesNotGenerated = "Failed to generate codes."

	// MsgCodeUsed is shown when the hub pushes a successful redemption result.
	MsgCodeUsed = "Code used successfully."

	// MsgCodeNotUsed is shown when the hub pushes a failed redemption result.
	MsgCodeNotUsed = "Failed to use code."

	// MsgNoUsedCodes is shown when the hub returns an empty used-code list.
	MsgNoUsedCodes = "No used codes found."

	// MsgNoUnusedCodes is shown when the hub returns an empty unused-code
	// list.
	MsgNoUnusedCodes = "No unused codes found."

	// MsgUsedCodesHeader starts a non-empty used-code listing.
	MsgUsedCodesHeader = "Used Codes:"

	// MsgUnusedCodesHeader starts a non-empty unused-code listing.
	MsgUnusedCodesHeader = "Unused Codes:"

	// MsgPingResponseFormat formats the hub's ping reply.
	MsgPingResponseFormat = "Ping Response: %s"

	// MsgCallErrorFormat formats a failed remote call as
	// "Error calling <Operation>: <message>".
	MsgCallErrorFormat = "Error calling %s: %s"

	// MsgConnectErrorFormat formats a failed initial connection.
	MsgConnectErrorFormat = "Error connecting to hub: %s"

	// MsgConnected is printed once the initial handshake succeeds.
	MsgConnected = "Connected to hub!"

	// MsgExiting is printed when the user leaves the menu.
	MsgExiting = "Exiting..."

	// MsgCopied is shown after the last result was copied to the clipboard.
	MsgCopied = "Copied to clipboard."

	// MsgNothingToCopy is shown when there is no last result to copy.
	MsgNothingToCopy = "Nothing to copy."
)
