package source

// SplitGCSURI is exported for testing
var SplitGCSURI = splitGCSURI

// ObjectName is exported for testing
var ObjectName = objectName
