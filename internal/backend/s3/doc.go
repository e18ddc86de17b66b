// Package s3 implements the object-storage adapter. Connect is pure local
// client construction: the AWS SDK client is built from the endpoint config
// without any network round-trip, so an object-storage connection is
// established the moment its manager is constructed. Ping is the opt-in
// reachability probe for callers that want one.
package s3
