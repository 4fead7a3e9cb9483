package config

// defaultTeamCertifications is the plant's standard certification matrix
// per maintenance team. Values mirror the certification register used by
// the fleet store.
func defaultTeamCertifications() map[string][]string {
	return map[string][]string{
		"Mechanical Maintenance": {
			"Millwright (Trade Certificate)",
			"Fitter and Turner (Trade Certificate)",
			"Mechanical Fitter (Trade Certificate)",
			"Boilermaker (Trade Certificate)",
			"Rigger (Trade Certificate)",
			"Welder (Trade Certificate)",
			"National Diploma: Mechanical Engineering",
			"BEng / BEngTech / BSc Eng (Mechanical)",
			"GCC Mechanical Engineer (Factories)",
			"Confined Space Entry Certificate",
			"Working at Heights Certificate",
			"Lockout–Tagout Certificate",
			"Hot Work Permit Certification",
			"Rigging and Slinging Certificate",
			"Pressure Equipment Regulations (PER) Competency",
			"Boiler Operator Certificate",
			"Vibration Analysis Certification",
			"Predictive Maintenance Certification",
			"OEM Machine Maintenance Authorization",
		},
		"Electrical Maintenance": {
			"Electrician (Trade Certificate)",
			"Industrial Electronics Technician (Trade Certificate)",
			"National Diploma: Electrical Engineering",
			"BEng / BEngTech / BSc Eng (Electrical)",
			"GCC Electrical Engineer (Factories)",
			"ECSA Registration (Pr Eng / Pr Tech Eng / Pr Eng Tech)",
			"Electrical Switching Authorization (LV)",
			"Electrical Switching Authorization (MV)",
			"Electrical Switching Authorization (HV)",
			"Responsible Person (Electrical)",
			"Authorized Person (Electrical)",
			"Arc Flash Safety Training Certificate",
			"Lockout–Tagout Certificate",
			"Confined Space Entry Certificate",
			"Working at Heights Certificate",
			"IECEx 004 / 006",
			"OEM Electrical System Authorization",
		},
		"Instrumentation & Control (I&C)": {
			"Instrumentation Technician (Trade Certificate)",
			"Industrial Electronics Technician (Trade Certificate)",
			"National Diploma: Instrumentation / Electrical Engineering",
			"BEng / BEngTech (Control / Electrical / Mechatronics)",
			"ECSA Registration",
			"IECEx 001 / 004 / 007",
			"Calibration Technician Certification",
			"Control Valve Maintenance Certification",
			"Loop Tuning Certification",
			"Lockout–Tagout Certificate",
			"Confined Space Entry Certificate",
			"OEM Instrumentation Authorization",
		},
		"Automation & PLC Systems": {
			"Mechatronics Technician (Trade Certificate)",
			"Industrial Electronics Technician (Trade Certificate)",
			"National Diploma: Mechatronics / Electrical Engineering",
			"BEng / BEngTech (Automation / Electrical / Mechatronics)",
			"ECSA Registration",
			"PLC Programming Certification (General)",
			"Safety PLC Programming Certification",
			"Functional Safety (IEC 61508 / ISO 13849)",
			"SCADA System Certification",
			"Industrial Networking Certification",
			"Lockout–Tagout Certificate",
			"OEM PLC Platform Certification",
		},
		"Robotics & Motion Control": {
			"Mechatronics Technician (Trade Certificate)",
			"Millwright (Trade Certificate)",
			"National Diploma: Mechatronics / Mechanical Engineering",
			"BEng / BEngTech (Mechatronics / Mechanical)",
			"Robot Manufacturer Certification (ABB / FANUC / KUKA / Yaskawa)",
			"Servo & Motion Control Certification",
			"CNC Controller Certification",
			"Functional Safety Certification",
			"Working at Heights Certificate",
			"Lockout–Tagout Certificate",
			"OEM Robotic Cell Authorization",
		},
		"Reliability & Asset Engineering": {
			"National Diploma: Mechanical / Electrical Engineering",
			"BEng / BEngTech / BSc Eng",
			"ECSA Registration",
			"Certified Maintenance & Reliability Professional (CMRP)",
			"Certified Maintenance & Reliability Technician (CMRT)",
			"Vibration Analysis (Cat I–IV)",
			"Infrared Thermography Certification",
			"Ultrasound Condition Monitoring Certification",
			"Root Cause Analysis (RCA) Certification",
			"Asset Management ISO 55001 Awareness",
			"Predictive Maintenance Certification",
		},
		"Maintenance Planning & Scheduling": {
			"National Diploma: Engineering or Operations",
			"BEng / BEngTech (Maintenance / Industrial)",
			"ECSA Registration",
			"CMMS Administration Certification",
			"Maintenance Strategy Certification",
			"Shutdown Planning Certification",
			"Management of Change (MOC) Certification",
			"ISO 9001 Internal Auditor",
		},
		"Technical Support / Breakdown Response": {
			"Millwright (Trade Certificate)",
			"Electrician (Trade Certificate)",
			"Mechatronics Technician (Trade Certificate)",
			"Industrial Electronics Technician",
			"National Diploma: Engineering",
			"Multi-Skilled Artisan Certification",
			"Lockout–Tagout Certificate",
			"Electrical Switching Authorization (LV)",
			"Confined Space Entry Certificate",
			"Working at Heights Certificate",
			"OEM Rapid Response Authorization",
		},
		"Utilities & Facilities Engineering": {
			"Mechanical Fitter (Trade Certificate)",
			"Electrician (Trade Certificate)",
			"Boiler Operator Certificate",
			"Steam Plant Operator Certificate",
			"Refrigeration Operator Certificate",
			"Ammonia Plant Safety Certificate",
			"National Diploma: Mechanical / Electrical Engineering",
			"BEng / BEngTech",
			"GCC Mechanical or Electrical Engineer (Factories)",
			"Pressure Equipment Regulations (PER) Competency",
			"Electrical Switching Authorization",
			"Lockout–Tagout Certificate",
		},
		"Health, Safety & Environment (HSE)": {
			"OHS Practitioner Certificate",
			"OHS Representative Certificate",
			"ISO 45001 Internal Auditor",
			"ISO 14001 Awareness / Auditor",
			"Hazard Identification and Risk Assessment (HIRA)",
			"Incident Investigation Certification",
			"Fire Fighting Certificate",
			"Emergency Response Certificate",
			"First Aid Level 3",
			"Safety Certificate for Contractors (SCC)",
		},
		"Quality Assurance & Calibration": {
			"National Diploma: Engineering / Quality",
			"BEng / BEngTech",
			"ISO 9001 Internal Auditor",
			"Calibration Technician Certification",
			"Measurement Systems Analysis (MSA)",
			"Root Cause Analysis Certification",
			"Statistical Process Control (SPC)",
			"Management of Change (MOC) Certification",
		},
		"Projects & Capital Engineering": {
			"National Diploma: Engineering",
			"BEng / BEngTech / BSc Eng",
			"ECSA Registration",
			"GCC Mechanical or Electrical Engineer (Factories)",
			"Project Management Certification (PMP / PRINCE2)",
			"Commissioning Engineer Certification",
			"Functional Safety Certification",
			"OEM Commissioning Authorization",
			"Lockout–Tagout Certificate",
		},
		"Engineering & Maintenance Management": {
			"BEng / BEngTech / BSc Eng",
			"ECSA Registration (Professional)",
			"GCC Mechanical or Electrical Engineer (Factories)",
			"Certified Maintenance Manager (CMM)",
			"Asset Management ISO 55001",
			"ISO 9001 / 45001 Auditor",
			"Management of Change (MOC)",
			"Legal Appointments (OHS Act Sections 8 & 16)",
		},
	}
}
