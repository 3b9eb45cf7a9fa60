// Package identifier generates the local part of disposable mailbox
// addresses.
//
// Two forms are available:
//
//   - [Random]: a 10-character base-36 token such as "k3v9q0zr2m".
//   - [Humanized]: a lowercase name-adjective-animal phrase such as
//     "olivia-brave-otter", drawn from fixed dictionaries.
//
// Neither form is guaranteed unique and neither is cryptographically secure.
// Generation never fails.
package identifier
