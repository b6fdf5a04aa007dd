// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/edmxconv/internal/fileutil"
	"github.com/erraggy/edmxconv/xmltree"
)

// TeaBusiMetadata is a service document exercising references, aliases, entity
// and complex types, an entity container, operations, enums, terms and
// annotations.
const TeaBusiMetadata = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx Version="4.0" xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx">
	<edmx:Reference Uri="/sap/opu/odata/IWFND/CATALOGSERVICE;v=2/Vocabularies(TechnicalName='%2FIWBEP%2FVOC_CORE',Version='0001',SAP__Origin='')/$value">
		<edmx:Include Namespace="Org.OData.Core.V1" Alias="Core"/>
	</edmx:Reference>
	<edmx:Reference Uri="/sap/opu/odata/IWFND/CATALOGSERVICE;v=2/Vocabularies(TechnicalName='%2FIWBEP%2FVOC_UI',Version='0001',SAP__Origin='')/$value">
		<edmx:Include Namespace="com.sap.vocabularies.UI.v1" Alias="UI"/>
		<edmx:IncludeAnnotations TermNamespace="com.sap.vocabularies.UI.v1" TargetNamespace="tea_busi" Qualifier="Tablet"/>
	</edmx:Reference>
	<edmx:DataServices>
		<Schema Namespace="tea_busi" Alias="tea" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<EntityType Name="TEAM" HasStream="true">
				<Key>
					<PropertyRef Name="Team_Id"/>
				</Key>
				<Property Name="Team_Id" Type="tea.ComplexType_Salary" Nullable="false" MaxLength="10"/>
				<Property Name="Name" Type="Edm.String" Nullable="false" MaxLength="max" Unicode="false"/>
				<Property Name="MEMBER_COUNT" Type="Edm.Int32" DefaultValue="0"/>
				<NavigationProperty Name="TEAM_2_EMPLOYEES" Type="Collection(tea.Worker)" Partner="EMPLOYEE_2_TEAM"/>
				<NavigationProperty Name="TEAM_2_MANAGER" Type="tea.MANAGER" Nullable="false" ContainsTarget="true">
					<OnDelete Action="Cascade"/>
					<ReferentialConstraint Property="MANAGER_ID" ReferencedProperty="ID"/>
				</NavigationProperty>
			</EntityType>
			<EntityType Name="Worker" BaseType="tea.Person" Abstract="true" OpenType="true">
				<Key>
					<PropertyRef Name="ID"/>
					<PropertyRef Name="Address/City" Alias="City"/>
				</Key>
				<Property Name="ID" Type="Edm.String" Nullable="false"/>
				<Property Name="SALARY" Type="Edm.Decimal" Precision="8" Scale="variable"/>
				<Property Name="LOCATION" Type="Edm.GeographyPoint" SRID="4326"/>
			</EntityType>
			<ComplexType Name="ComplexType_Salary" OpenType="false">
				<Property Name="AMOUNT" Type="Edm.Decimal" Precision="8" Scale="2"/>
				<Property Name="Tags" Type="Collection(Edm.String)"/>
			</ComplexType>
			<EnumType Name="Importance" UnderlyingType="Edm.Int32">
				<Member Name="Low"/>
				<Member Name="Medium" Value="5"/>
				<Member Name="High"/>
			</EnumType>
			<EnumType Name="Flags" IsFlags="true" UnderlyingType="Edm.Int64">
				<Member Name="Huge" Value="9007199254740993"/>
			</EnumType>
			<TypeDefinition Name="Money" UnderlyingType="Edm.Decimal" Precision="16" Scale="3"/>
			<Term Name="Rating" Type="Collection(tea.Importance)" Nullable="false" BaseTerm="Core.Description"/>
			<Action Name="AcChangeTeamBudgetByID">
				<Parameter Name="TeamID" Type="Edm.String" Nullable="false" MaxLength="10"/>
				<Parameter Name="Budget" Type="Edm.Decimal" Precision="16" Scale="variable"/>
			</Action>
			<Action Name="AcChangeTeamBudgetByID" IsBound="true" EntitySetPath="_it">
				<Parameter Name="_it" Type="tea.TEAM"/>
			</Action>
			<Function Name="GetEmployeeMaxAge" IsComposable="true">
				<ReturnType Type="Edm.Int16" Nullable="false"/>
			</Function>
			<EntityContainer Name="Container">
				<EntitySet Name="TEAMS" EntityType="tea.TEAM" IncludeInServiceDocument="false">
					<NavigationPropertyBinding Path="TEAM_2_EMPLOYEES" Target="EMPLOYEES"/>
					<NavigationPropertyBinding Path="TEAM_2_MANAGER" Target="tea.Container/MANAGERS"/>
					<NavigationPropertyBinding Path="TEAM_2_OTHER" Target="other.Container/SETS"/>
				</EntitySet>
				<EntitySet Name="EMPLOYEES" EntityType="tea.Worker"/>
				<Singleton Name="Me" Type="tea.Worker">
					<NavigationPropertyBinding Path="EMPLOYEE_2_TEAM" Target="tea_busi.Container/TEAMS"/>
				</Singleton>
				<ActionImport Name="ChangeTeamBudgetByID" Action="tea.AcChangeTeamBudgetByID"/>
				<FunctionImport Name="GetEmployeeMaxAge" Function="tea.GetEmployeeMaxAge" EntitySet="tea.Container/EMPLOYEES" IncludeInServiceDocument="false"/>
			</EntityContainer>
			<Annotations Target="tea.Worker">
				<Annotation Term="Core.Description" String="A worker"/>
				<Annotation Term="UI.Hidden"/>
				<Annotation Term="UI.Importance" EnumMember="UI.ImportanceType/High"/>
				<Annotation Term="Core.Description" Qualifier="Short">
					<String>Worker</String>
				</Annotation>
			</Annotations>
			<Annotations Target="tea.Worker/ID" Qualifier="Tablet">
				<Annotation Term="UI.Label" Qualifier="Phone" String="ID"/>
				<Annotation Term="UI.Count">
					<Int>42</Int>
				</Annotation>
			</Annotations>
		</Schema>
	</edmx:DataServices>
</edmx:Edmx>`

// MinimalMetadata is the smallest useful document: one schema with one entity type.
const MinimalMetadata = `<edmx:Edmx Version="4.01" xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx">
	<edmx:DataServices>
		<Schema Namespace="min" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<EntityType Name="Item">
				<Key><PropertyRef Name="ID"/></Key>
				<Property Name="ID" Type="Edm.Int32" Nullable="false"/>
			</EntityType>
		</Schema>
	</edmx:DataServices>
</edmx:Edmx>`

// ForwardAliasMetadata uses an alias before the Schema that declares it.
const ForwardAliasMetadata = `<edmx:Edmx Version="4.0" xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx">
	<edmx:DataServices>
		<Schema Namespace="first" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<ComplexType Name="Holder">
				<Property Name="Value" Type="sec.Value"/>
			</ComplexType>
		</Schema>
		<Schema Namespace="second" Alias="sec" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<ComplexType Name="Value"/>
		</Schema>
	</edmx:DataServices>
</edmx:Edmx>`

// UnsafeIntMetadata contains an Int annotation beyond the safe integer range.
const UnsafeIntMetadata = `<edmx:Edmx Version="4.0" xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx">
	<edmx:DataServices>
		<Schema Namespace="n" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<Annotations Target="n.T">
				<Annotation Term="n.Big" Int="9007199254740993"/>
			</Annotations>
		</Schema>
	</edmx:DataServices>
</edmx:Edmx>`

// MustParse parses an XML document and returns its root element, failing the test
// on error.
func MustParse(t *testing.T, document string) *xmltree.Element {
	t.Helper()

	root, err := xmltree.ParseString(document)
	if err != nil {
		t.Fatalf("Failed to parse XML document: %v", err)
	}
	return root
}

// WriteTempXML writes a document to a temporary file and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempXML(t *testing.T, document string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "metadata.xml")
	if err := os.WriteFile(tmpFile, []byte(document), fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary XML file: %v", err)
	}

	return tmpFile
}
