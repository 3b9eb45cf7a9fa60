// Package store reads delivered messages from the remote message store, a
// Firestore database exposed over its public REST API.
//
// # Layout
//
// Messages for an address live in the subcollection
//
//	projects/temporary-email/databases/(default)/documents/MAILBOXES/{address}/INBOX
//
// Each document carries string fields from, recipient, subject and bodyHtml
// plus an integer field created_at holding epoch milliseconds.
//
// # Requests
//
// [Client.ListInbox] issues an unauthenticated list call through the
// generated Firestore client and follows nextPageToken until the full
// collection has been read. Requests are never retried; a failure is
// returned as a [RequestError] wrapping the original error, which is a
// *googleapi.Error when the store answered with a non-2xx status.
//
// # Thread Safety
//
// [Client] is safe for concurrent use.
package store
