package main

// Exit codes for the lsmodels CLI.
const (
	ExitOK          = 0 // Models listed.
	ExitInvalidArgs = 1 // Bad arguments or missing credential.
	ExitAPIError    = 2 // The list call failed; nothing was printed.
	ExitOutputError = 3 // Writing to stdout failed.
)
