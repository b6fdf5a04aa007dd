package converter

//go:generate go tool stringer -type=processorTag -trimprefix=proc -output=processortag_string.go
//go:generate go tool stringer -type=postProcessorTag -trimprefix=post -output=postprocessortag_string.go

// processorTag selects the step run on entering an element, before its children.
type processorTag int

const (
	procNone processorTag = iota
	procAlias
	procEdmx
	procReference
	procInclude
	procIncludeAnnotations
	procSchema
	procEntityType
	procComplexType
	procPropertyRef
	procProperty
	procNavigationProperty
	procOnDelete
	procReferentialConstraint
	procEntityContainer
	procEntitySet
	procSingleton
	procNavigationPropertyBinding
	procActionImport
	procFunctionImport
	procActionOrFunction
	procParameter
	procReturnType
	procEnumType
	procEnumMember
	procTerm
	procTypeDefinition
	procAnnotations
	procAnnotation
)

// postProcessorTag selects the step run after an element's children. Its result is
// handed to the parent's post-processor.
type postProcessorTag int

const (
	postNone postProcessorTag = iota
	postAnnotation
	postLeaf
	postLabeledElementReference
)

// node describes how one element kind is processed and which children it accepts.
// Children not found in children are looked up in include, a fragment shared by
// structurally similar parents.
type node struct {
	processor processorTag
	post      postProcessorTag
	children  map[string]*node
	include   *node
}

// child returns the configuration for a child element, or nil when the child is
// not recognized below this element.
func (n *node) child(local string) *node {
	if c := n.children[local]; c != nil {
		return c
	}
	if n.include != nil {
		return n.include.children[local]
	}
	return nil
}

// aliasConfig drives the first pass: it only visits the elements that declare aliases.
var aliasConfig = &node{
	children: map[string]*node{
		"Reference": {
			children: map[string]*node{
				"Include": {processor: procAlias},
			},
		},
		"DataServices": {
			children: map[string]*node{
				"Schema": {processor: procAlias},
			},
		},
	},
}

var structuredTypeConfig = &node{
	children: map[string]*node{
		"Property": {processor: procProperty},
		"NavigationProperty": {
			processor: procNavigationProperty,
			children: map[string]*node{
				"OnDelete":              {processor: procOnDelete},
				"ReferentialConstraint": {processor: procReferentialConstraint},
			},
		},
	},
}

var entitySetConfig = &node{
	children: map[string]*node{
		"NavigationPropertyBinding": {processor: procNavigationPropertyBinding},
	},
}

var actionOrFunctionConfig = &node{
	children: map[string]*node{
		"Parameter":  {processor: procParameter},
		"ReturnType": {processor: procReturnType},
	},
}

// annotationLeafConfig lists the constant and path expressions that may appear as
// the single child of an Annotation element.
var annotationLeafConfig = &node{
	children: map[string]*node{
		"AnnotationPath":          {post: postLeaf},
		"Binary":                  {post: postLeaf},
		"Bool":                    {post: postLeaf},
		"Date":                    {post: postLeaf},
		"DateTimeOffset":          {post: postLeaf},
		"Decimal":                 {post: postLeaf},
		"Duration":                {post: postLeaf},
		"EnumMember":              {post: postLeaf},
		"Float":                   {post: postLeaf},
		"Guid":                    {post: postLeaf},
		"Int":                     {post: postLeaf},
		"LabeledElementReference": {post: postLabeledElementReference},
		"NavigationPropertyPath":  {post: postLeaf},
		"Null":                    {post: postLeaf},
		"Path":                    {post: postLeaf},
		"PropertyPath":            {post: postLeaf},
		"String":                  {post: postLeaf},
		"TimeOfDay":               {post: postLeaf},
		"UrlRef":                  {post: postLeaf},
	},
}

// fullConfig drives the second pass, starting at the edmx:Edmx element.
var fullConfig = &node{
	processor: procEdmx,
	children: map[string]*node{
		"Reference": {
			processor: procReference,
			children: map[string]*node{
				"Include":            {processor: procInclude},
				"IncludeAnnotations": {processor: procIncludeAnnotations},
			},
		},
		"DataServices": {
			children: map[string]*node{
				"Schema": {
					processor: procSchema,
					children: map[string]*node{
						"Action": {
							processor: procActionOrFunction,
							include:   actionOrFunctionConfig,
						},
						"Annotations": {
							processor: procAnnotations,
							children: map[string]*node{
								"Annotation": {
									processor: procAnnotation,
									post:      postAnnotation,
									include:   annotationLeafConfig,
								},
							},
						},
						"Function": {
							processor: procActionOrFunction,
							include:   actionOrFunctionConfig,
						},
						"EntityType": {
							processor: procEntityType,
							include:   structuredTypeConfig,
							children: map[string]*node{
								"Key": {
									children: map[string]*node{
										"PropertyRef": {processor: procPropertyRef},
									},
								},
							},
						},
						"ComplexType": {
							processor: procComplexType,
							include:   structuredTypeConfig,
						},
						"EntityContainer": {
							processor: procEntityContainer,
							children: map[string]*node{
								"ActionImport":   {processor: procActionImport},
								"EntitySet":      {processor: procEntitySet, include: entitySetConfig},
								"FunctionImport": {processor: procFunctionImport},
								"Singleton":      {processor: procSingleton, include: entitySetConfig},
							},
						},
						"EnumType": {
							processor: procEnumType,
							children: map[string]*node{
								"Member": {processor: procEnumMember},
							},
						},
						"Term":           {processor: procTerm},
						"TypeDefinition": {processor: procTypeDefinition},
					},
				},
			},
		},
	},
}
