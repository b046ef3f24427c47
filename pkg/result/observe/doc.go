// Package observe provides interceptors for result.WithInterceptor: a zap
// logger, an in-memory recorder, fan-out and a scoped install helper.
package observe
