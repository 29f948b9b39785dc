package model

import "errors"

// ErrProtocolViolation is wrapped by constructor errors when a
// required-non-null attribute (NodeClass, BrowseName, DisplayName) comes
// back absent, or when the NodeClass attribute disagrees with the variant
// being constructed. Both indicate a server/client protocol violation
// rather than a normal degrade-to-default case.
var ErrProtocolViolation = errors.New("model: protocol violation")
