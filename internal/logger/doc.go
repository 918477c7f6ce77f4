// Package logger wraps zap for VneTemplate binaries and examples.
//
// It keeps a global sugared logger that renders entries through a small
// spdlog-style pattern ("[%l] [%n] %v" by default), plus:
//   - Configure/Shutdown to install a logger from a Config and tear it down,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and leveled convenience functions (Infof, ErrorKV, etc.).
package logger
