package document

// eventType carries the field list shared by every event kind. The kinds
// below extend it with nothing but their tag.
var eventType = NewLineType("", nil,
	IntField("Layer", 0),
	TimecodeField("Start"),
	TimecodeField("End"),
	StringField("Style", "Default"),
	StringField("Name", ""),
	IntField("MarginL", 0),
	IntField("MarginR", 0),
	IntField("MarginV", 0),
	StringField("Effect", ""),
	StringField("Text", ""),
)

// Event line kinds recognized by an events section.
var (
	DialogueType = NewLineType("Dialogue", eventType)
	CommentType  = NewLineType("Comment", eventType)
	PictureType  = NewLineType("Picture", eventType)
	SoundType    = NewLineType("Sound", eventType)
	MovieType    = NewLineType("Movie", eventType)
	CommandType  = NewLineType("Command", eventType)
)

// StyleType describes one V4+ style definition.
var StyleType = NewLineType("Style", nil,
	StringField("Name", "Default"),
	StringField("Fontname", "Arial"),
	FloatField("Fontsize", 20),
	ColorField("PrimaryColour", White),
	ColorField("SecondaryColour", Red),
	ColorField("OutlineColour", Black),
	ColorField("BackColour", Black),
	BoolField("Bold", false),
	BoolField("Italic", false),
	BoolField("Underline", false),
	BoolField("StrikeOut", false),
	FloatField("ScaleX", 100),
	FloatField("ScaleY", 100),
	FloatField("Spacing", 0),
	FloatField("Angle", 0),
	IntField("BorderStyle", 1),
	FloatField("Outline", 2),
	FloatField("Shadow", 2),
	IntField("Alignment", 2),
	IntField("MarginL", 10),
	IntField("MarginR", 10),
	IntField("MarginV", 10),
	IntField("Encoding", 1),
)

// UnknownType stores a line of an unrecognized kind as a single opaque
// field named Text holding the whole body. The tag seen in the source is
// carried on the line itself.
var UnknownType = NewLineType("", nil, OpaqueField("Text"))

// scriptInfoFields are the Script Info keys that decode to typed values.
// Any other key is kept as opaque text.
var scriptInfoFields = []Field{
	StringField("ScriptType", "v4.00+"),
	IntField("PlayResX", 640),
	IntField("PlayResY", 480),
	IntField("WrapStyle", 0),
	StringField("ScaledBorderAndShadow", "yes"),
}
