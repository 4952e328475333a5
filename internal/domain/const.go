package domain

// ZeroAddress is the Ethereum zero address. It is a real value with sentinel
// meaning: mint source, burn destination, cleared approval, native currency,
// and the wildcard entry in the creator approval registry.
const ZeroAddress = "0x0000000000000000000000000000000000000000"
