package i18n

// Message keys shared by the parser, the help renderer and the error types.
const (
	MsgNegationPrefixKey     = "argv.msg.negation_prefix"
	MsgMetaVarKey            = "argv.msg.meta_var"
	MsgOptionsKey            = "argv.msg.options"
	MsgDefaultKey            = "argv.msg.default"
	MsgAllowedValuesKey      = "argv.msg.allowed_values"
	MsgHelpLongKey           = "argv.msg.help_long"
	MsgHelpShortKey          = "argv.msg.help_short"
	MsgHelpDescriptionKey    = "argv.msg.help_description"
	MsgVersionLongKey        = "argv.msg.version_long"
	MsgVersionShortKey       = "argv.msg.version_short"
	MsgVersionDescriptionKey = "argv.msg.version_description"

	ErrMissingArgumentKey      = "argv.error.missing_argument"
	ErrUnrecognizedArgumentKey = "argv.error.unrecognized_argument"
	ErrInvalidValueKey         = "argv.error.invalid_value"
	ErrUnknownVariantKey       = "argv.error.unknown_variant"
	ErrExtraArgumentsKey       = "argv.error.extra_arguments"
	ErrDuplicateNameKey        = "argv.error.duplicate_name"
	ErrInvalidNameKey          = "argv.error.invalid_name"
	ErrMissingValueKey         = "argv.error.missing_value"
)
