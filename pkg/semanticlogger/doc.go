// Package semanticlogger renames the usual log severities to names that say
// what a message means to whoever reads it:
//
//	debug -> ForTestPurpose
//	info  -> AsExpectedByDefault
//	warn  -> ToInvestigateTomorrow
//	error -> WakeMeUpInTheMiddleOfTheNight
//
// The package does no formatting, filtering or output of its own. Every call
// is forwarded unchanged to a Delegate resolved from the process-wide Backend
// (zerolog by default, see package logger).
//
// Loggers are only created through the factory functions:
//
//	log := semanticlogger.For[Server]()          // named after the Go type
//	log := semanticlogger.FromName("billing")    // literal name
//	log := semanticlogger.FromDelegate(recorder) // existing delegate, e.g. a test double
//
//	log.AsExpectedByDefault("listening")
//	log.ToInvestigateTomorrowf("retrying %s after %v", host, backoff)
//	log.WakeMeUpInTheMiddleOfTheNightErr("payment failed", err)
//
// RemindToRemoveUnusedImplementationAfter logs at error severity once a
// calendar deadline has passed, to flag temporary code that outlived its
// planned removal date:
//
//	if err := log.RemindToRemoveUnusedImplementationAfter("2025-03-31", "drop v1 fallback"); err != nil {
//		panic(err) // malformed deadline
//	}
//
// "Today" is the host's local calendar date. No timezone normalization is
// applied, so hosts in different zones may disagree for part of a day.
package semanticlogger
