package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerName is the name of the zap logger annotations are mirrored to.
const LoggerName = "cdk"

// LogInfo adds an INFO level message to the CDK construct's metadata.
// These messages are typically output during `cdk synth`.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	msg := annotate(scope, constructID, zapcore.InfoLevel, format, args...)
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(msg))
}

// LogWarning adds a WARNING level message to the CDK construct's metadata.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	msg := annotate(scope, constructID, zapcore.WarnLevel, format, args...)
	awscdk.Annotations_Of(scope).AddWarning(jsii.String(msg))
}

// LogError adds an ERROR level message to the CDK construct's metadata.
// Synthesis fails when an error annotation is present.
func LogError(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	msg := annotate(scope, constructID, zapcore.ErrorLevel, format, args...)
	awscdk.Annotations_Of(scope).AddError(jsii.String(msg))
}

// annotate formats the message, mirrors it to the global zap logger and returns the annotation text.
func annotate(scope constructs.Construct, constructID string, level zapcore.Level, format string, args ...interface{}) string {
	path := *scope.Node().Path()
	msg := Format(path, constructID, fmt.Sprintf(format, args...))
	if ce := zap.L().Named(LoggerName).Check(level, msg); ce != nil {
		ce.Write(zap.String("path", path))
	}
	return msg
}

// Format prefixes message with "[constructID]" unless the construct path already ends with it.
// A path of "/Stack/Construct" with id "Construct" needs no prefix.
func Format(path string, constructID string, message string) string {
	if constructID == "" {
		return message
	}
	if strings.HasSuffix(path, "/"+constructID) || path == constructID {
		return message
	}
	return fmt.Sprintf("[%s] %s", constructID, message)
}
